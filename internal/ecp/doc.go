// Package ecp is a small client for the Roku External Control Protocol.
//
// ECP is plain HTTP served by every Roku device on port 8060. This package
// implements only the calls an interactive remote needs:
//   - POST /keypress/<key> for navigation and playback keys
//   - POST /keypress/Lit_<char> for literal text entry
//   - GET /query/device-info for the device description
//
// # Usage Example
//
//	client := ecp.NewClient(ecp.Address{Host: "192.168.1.134", Port: ecp.DefaultPort})
//
//	info, err := client.DeviceInfo(ctx)
//	if err != nil {
//	    log.Fatal(ecp.GetShortErrorMessage(err))
//	}
//	fmt.Println(info)
//
//	if err := client.Keypress(ctx, ecp.KeyHome); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Every failure is returned as a *DeviceError whose Type separates
// "no route to host" from "reachable but not a Roku" from everything else.
// Callers that need a single user-facing line use GetShortErrorMessage.
//
// # Timeouts
//
// Requests carry no client-side timeout unless SetTimeout is called. A
// keypress blocks until the device answers.
package ecp
