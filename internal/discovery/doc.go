// Package discovery locates Roku devices on the local network.
//
// Two finders run side by side:
//   - SSDP: an M-SEARCH for the "roku:ecp" search target, sent to the
//     239.255.255.250:1900 multicast group. Every Roku answers this.
//   - mDNS: a zeroconf browse for "_airplay._tcp" services whose TXT records
//     name Roku as the manufacturer. Catches AirPlay-capable devices on
//     networks that filter SSDP.
//
// # Discovery Process
//
// Discover runs every finder concurrently under a single deadline and returns
// the first device that answers. Scan waits for the whole deadline and
// returns every device, de-duplicated by host.
//
// # Usage Example
//
//	device, err := discovery.Discover(ctx, 5*time.Second)
//	if errors.Is(err, discovery.ErrNotFound) {
//	    fmt.Println("No Roku device found on the local network")
//	    os.Exit(1)
//	}
//	client := ecp.NewClient(device.Address())
//
// # Network Requirements
//
// - Multicast must be allowed on the local interface
// - The device must be on the same network segment
// - Firewalls must allow inbound UDP replies to the ephemeral SSDP port and
// mDNS (UDP 5353)
package discovery
