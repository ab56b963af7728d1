// Package config loads the daemon's own configuration from
// mc-manager.properties in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/cubeworks/mc-manager/internal/props"
)

const (
	// DefaultPath is where the daemon looks for its configuration.
	DefaultPath = "mc-manager.properties"

	defaultPort = 3030

	defaultContent = "# mc-manager configuration\r\n" +
		"# ip: IPv4 address to listen on; empty means 0.0.0.0\r\n" +
		"# port: TCP port to listen on\r\n" +
		"ip=\r\n" +
		"port=3030\r\n"
)

// Config is the daemon's listening address.
type Config struct {
	IP   string
	Port uint16
}

// Load reads the configuration, writing a default file when none exists.
// A present file with missing or invalid values is an error; the caller
// treats that as fatal.
func Load(path string) (*Config, error) {
	values, err := props.ReadAll(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if werr := os.WriteFile(path, []byte(defaultContent), 0644); werr != nil {
				return nil, fmt.Errorf("write default config: %w", werr)
			}
			return &Config{Port: defaultPort}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	ip, ok := values["ip"]
	if !ok {
		return nil, fmt.Errorf("%s: missing key %q", path, "ip")
	}
	if ip != "" {
		parsed := net.ParseIP(ip)
		if parsed == nil || parsed.To4() == nil {
			return nil, fmt.Errorf("%s: %q is not an IPv4 address", path, ip)
		}
	}
	cfg.IP = ip

	portStr, ok := values["port"]
	if !ok {
		return nil, fmt.Errorf("%s: missing key %q", path, "port")
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not a valid port", path, portStr)
	}
	cfg.Port = uint16(port)
	return cfg, nil
}

// Addr formats the listen address for net.Listen.
func (c *Config) Addr() string {
	ip := c.IP
	if ip == "" {
		ip = "0.0.0.0"
	}
	return net.JoinHostPort(ip, strconv.Itoa(int(c.Port)))
}
