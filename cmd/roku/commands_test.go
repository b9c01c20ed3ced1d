package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/muurk/rokucli/internal/discovery"
	"github.com/muurk/rokucli/internal/ecp"
	"github.com/muurk/rokucli/internal/ui"
)

var (
	testAddr = ecp.Address{Host: "192.168.1.134", Port: 8060}
	testInfo = &ecp.DeviceInfo{
		SerialNumber:    "X004000AAAAA",
		ModelName:       "TCL 55S425",
		ModelNumber:     "7105X",
		SoftwareVersion: "11.5.0",
		IsTVFlag:        true,
	}
)

func TestWriteInfo(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeInfo(ui.NewPrinter(&buf), &buf, "json", testAddr, testInfo); err != nil {
			t.Fatalf("writeInfo() error = %v", err)
		}

		var got map[string]any
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
		}
		if got["serial_number"] != "X004000AAAAA" || got["is_tv"] != true {
			t.Errorf("unexpected JSON: %v", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeInfo(ui.NewPrinter(&buf), &buf, "yaml", testAddr, testInfo); err != nil {
			t.Fatalf("writeInfo() error = %v", err)
		}

		var got map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
		}
		if got["model_name"] != "TCL 55S425" {
			t.Errorf("unexpected YAML: %v", got)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeInfo(ui.NewPrinter(&buf), &buf, "text", testAddr, testInfo); err != nil {
			t.Fatalf("writeInfo() error = %v", err)
		}
		if !strings.Contains(buf.String(), "192.168.1.134:8060") {
			t.Errorf("text output missing address:\n%s", buf.String())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeInfo(ui.NewPrinter(&buf), &buf, "xml", testAddr, testInfo); err == nil {
			t.Error("writeInfo() expected error for unknown format")
		}
	})
}

func TestSessionOptions(t *testing.T) {
	port = 9000
	defer func() { port = ecp.DefaultPort }()

	opts := sessionOptions(nil)
	if opts.Address != "" || opts.Port != 9000 {
		t.Errorf("sessionOptions(nil) = %+v", opts)
	}

	opts = sessionOptions([]string{"10.0.0.5"})
	if opts.Address != "10.0.0.5" {
		t.Errorf("Address = %q, want 10.0.0.5", opts.Address)
	}
}

func TestReportFatal(t *testing.T) {
	var buf bytes.Buffer
	err := reportFatal(ui.NewPrinter(&buf), discovery.ErrNotFound)

	if !errors.Is(err, errReported) {
		t.Errorf("reportFatal() = %v, want errReported", err)
	}
	if !strings.Contains(buf.String(), "No Roku device found on the local network") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"10.0.0.1", "10.0.0.2"}); err == nil {
		t.Error("expected error for two addresses")
	}
	if err := rootCmd.Args(rootCmd, []string{"10.0.0.1"}); err != nil {
		t.Errorf("one address rejected: %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	if !strings.HasPrefix(buf.String(), "roku ") {
		t.Errorf("version output = %q", buf.String())
	}
}
