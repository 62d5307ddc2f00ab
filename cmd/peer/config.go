package main

import (
	"os"

	"github.com/aesdh-lab/peerchat/util"
	"github.com/ogier/pflag"
)

// Config holds the flags the interactive peer application was
// started with. Unlike a fully scripted client, most of the session's
// actual behavior (who to connect to, what to send) is still driven
// by the menu loop; these flags only cover what's needed before the
// menu can start.
type Config struct {
	listenPort  int
	connectAddr string
	connectPort int
	fingerprint bool
	timeout     int
}

func newConfig() Config {
	var cfg Config

	pflag.Usage = printUsage

	listen := pflag.IntP("listen", "l", 0, "listen on this port for an inbound peer at startup")
	connect := pflag.StringP("connect", "c", "", "connect to a peer at host:port at startup")
	fingerprint := pflag.BoolP("fingerprint", "f", false, "print the session key fingerprint after connecting to a peer")
	timeout := pflag.IntP("timeout", "t", 0, "override the default operator wait timeout, in seconds")

	pflag.Parse()

	cfg.listenPort = *listen
	cfg.fingerprint = *fingerprint
	cfg.timeout = *timeout

	if *connect != "" {
		addr, port, err := splitHostPort(*connect)
		if err != nil {
			util.Eprintln("Invalid --connect address:", err)
			os.Exit(1)
		}
		cfg.connectAddr, cfg.connectPort = addr, port
	}

	return cfg
}

func printUsage() {
	util.Eprintln("Usage: " + os.Args[0] + " [OPTION]...")
	util.Eprintln("Flags:")
	pflag.PrintDefaults()
}
