package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/aesdh-lab/peerchat/session"
	"github.com/aesdh-lab/peerchat/util"
	"github.com/aesdh-lab/peerchat/wire"
)

const (
	cmdInitialize = "Request New Connection"
	cmdListen     = "Listen for New Connection"
	cmdTerminate  = "Terminate Connection"
	cmdRequest    = "Listen for Request"
	cmdReexchange = "Re-Exchange Keys"
	cmdSend       = "Send an Encrypted Message"
	cmdQuit       = "Quit"
)

func main() {
	cfg := newConfig()
	if cfg.timeout > 0 {
		wire.OperatorTimeout = time.Duration(cfg.timeout) * time.Second
	}

	r := bufio.NewReader(os.Stdin)
	sess := session.New()

	if cfg.connectAddr != "" {
		fmt.Printf("Connecting to %s:%d...\n", cfg.connectAddr, cfg.connectPort)
		if err := sess.Dial(cfg.connectAddr, cfg.connectPort); err != nil {
			util.Eprintln("Failed to connect:", err)
		} else {
			afterHandshake(sess, cfg)
		}
	} else if cfg.listenPort != 0 {
		fmt.Printf("Listening on port %d...\n", cfg.listenPort)
		if err := sess.Listen(cfg.listenPort); err != nil {
			util.Eprintln("Failed to accept a connection:", err)
		} else {
			afterHandshake(sess, cfg)
		}
	}

	for {
		util.Clear()
		fmt.Println("Status:", sess.Status())

		var choices []string
		if sess.Status() == session.Idle {
			choices = []string{cmdInitialize, cmdListen}
		} else {
			fmt.Printf("Shared key (mod 100): %v\n", fingerprintMod100(sess))
			choices = []string{cmdRequest, cmdSend, cmdReexchange, cmdTerminate}
		}
		choices = append(choices, cmdQuit)

		fmt.Println("What would you like to do?")
		for i, c := range choices {
			fmt.Printf("%d: %s\n", i, c)
		}
		selection := util.ReadInt(r, "", -1)
		if selection < 0 || selection >= len(choices) {
			util.Prompt(r, "Invalid selection")
			continue
		}

		switch choices[selection] {
		case cmdInitialize:
			doInitialize(sess, r, cfg)
		case cmdListen:
			doListen(sess, r, cfg)
		case cmdRequest:
			doRequest(sess, r)
		case cmdSend:
			doSend(sess, r)
		case cmdReexchange:
			doReexchange(sess, r)
		case cmdTerminate:
			sess.Terminate()
		case cmdQuit:
			sess.Terminate()
			return
		}
	}
}

func doInitialize(sess *session.Session, r *bufio.Reader, cfg Config) {
	addr := util.ReadLine(r, "Enter server address (or \"local\" for localhost)")
	if addr == "" {
		util.Prompt(r, "Invalid server address")
		return
	}
	if addr == "local" {
		addr = "127.0.0.1"
	}
	port := util.ReadInt(r, "Enter a port", 0)
	if port == 0 {
		util.Prompt(r, "Invalid port")
		return
	}
	if err := sess.Dial(addr, port); err != nil {
		util.Prompt(r, "Failed to connect: "+err.Error())
		return
	}
	afterHandshake(sess, cfg)
}

func doListen(sess *session.Session, r *bufio.Reader, cfg Config) {
	port := util.ReadInt(r, "Enter a port", 0)
	if port == 0 {
		util.Prompt(r, "Invalid port")
		return
	}
	fmt.Println("Listening...")
	if err := sess.Listen(port); err != nil {
		util.Prompt(r, "Failed to connect: "+err.Error())
		return
	}
	afterHandshake(sess, cfg)
}

func afterHandshake(sess *session.Session, cfg Config) {
	if cfg.fingerprint {
		fmt.Println("Fingerprint:", fingerprint(sess))
	}
}

func doRequest(sess *session.Session, r *bufio.Reader) {
	fmt.Println("Waiting for Request...")
	tag, err := sess.AwaitRequest()
	if err != nil {
		util.Prompt(r, "Failed to receive packet: "+err.Error())
		return
	}

	switch tag {
	case wire.TagReexchange:
		if util.Acknowledge(r, "Peer is requesting to re-exchange keys") {
			if err := sess.AcceptReexchange(); err != nil {
				util.Prompt(r, "Failed to exchange keys: "+err.Error())
			}
		} else {
			sess.RefuseReexchange()
		}
	case wire.TagMessage:
		if util.Acknowledge(r, "Peer is sending a message") {
			if err := sess.AcceptMessage(); err != nil {
				util.Prompt(r, "Failed to receive message: "+err.Error())
				return
			}
			message, err := sess.ReceiveMessage()
			if err != nil {
				util.Prompt(r, "Failed to receive message: "+err.Error())
				return
			}
			util.Prompt(r, "Message: "+string(message))
		} else {
			sess.RefuseMessage()
		}
	default:
		util.Prompt(r, "Unknown request")
	}
}

func doSend(sess *session.Session, r *bufio.Reader) {
	message := util.ReadLine(r, "Enter the message:")

	sizeChoice := util.ReadInt(r, "What size key?\n1. 128\n2. 192\n3. 256", -1)
	if sizeChoice < 1 || sizeChoice > 3 {
		util.Prompt(r, "Invalid selection")
		return
	}

	modeChoice := util.ReadInt(r, "What mode?\n1. ECB\n2. CTR\n3. GCM", -1)
	if modeChoice < 1 || modeChoice > 3 {
		util.Prompt(r, "Invalid selection")
		return
	}
	mode := session.Mode(modeChoice - 1)

	if err := sess.SendMessage([]byte(message), mode, session.Size(sizeChoice)); err != nil {
		util.Prompt(r, "Failed to send message: "+err.Error())
	}
}

func doReexchange(sess *session.Session, r *bufio.Reader) {
	fmt.Println("Asking peer to re-exchange keys...")
	if err := sess.RequestReexchange(); err != nil {
		util.Prompt(r, "Failed to exchange keys: "+err.Error())
	}
}

func fingerprint(sess *session.Session) string {
	return util.Fingerprint(sess.SharedKey())
}

func fingerprintMod100(sess *session.Session) [4]uint64 {
	sk := sess.SharedKey()
	var mod [4]uint64
	for i, w := range sk {
		mod[i] = w % 100
	}
	return mod
}
