package env

import (
	"casino_bot/internal/config"
	"net"
	"os"
)

const (
	hostName = "HTTP_HOST"
	portName = "HTTP_PORT"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(hostName)

	port := os.Getenv(portName)
	if len(port) == 0 {
		port = "8080"
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
