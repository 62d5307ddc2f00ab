package main

import (
	"fmt"
	"strconv"
	"strings"
)

func splitHostPort(s string) (string, int, error) {
	idx := strings.LastIndex(s, ":")
	if idx == -1 {
		return "", 0, fmt.Errorf("expected host:port, got %q", s)
	}
	host, portStr := s[:idx], s[idx+1:]
	if host == "local" {
		host = "127.0.0.1"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("bad port %q: %w", portStr, err)
	}
	return host, port, nil
}
