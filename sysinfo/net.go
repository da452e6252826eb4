package sysinfo

import (
	"net"
	"time"
)

// localIPFromRoute returns the IPv4 address of the interface the default
// route uses. Dialing UDP performs no traffic; it only asks the kernel
// which source address an outbound packet would get. Any failure yields an
// empty string, which the caller maps to the sentinel.
func localIPFromRoute() string {
	d := net.Dialer{Timeout: 500 * time.Millisecond}
	conn, err := d.Dial("udp", "8.8.8.8:53")
	if err != nil {
		return ""
	}
	defer conn.Close()

	ua, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return ""
	}
	ip4 := ua.IP.To4()
	if ip4 == nil || ip4.IsLoopback() {
		return ""
	}
	return ip4.String()
}
