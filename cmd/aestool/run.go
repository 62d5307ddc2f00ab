package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/aesdh-lab/peerchat/aes"
	"github.com/aesdh-lab/peerchat/util"
	"golang.org/x/term"
)

const nonceSize = 8

func run(c *cli) error {
	key, err := loadKey(c)
	if err != nil {
		return err
	}

	seed, _, err := aes.SeedFromBytes(key)
	if err != nil {
		return err
	}
	rounds := c.Mode.rounds()

	in, err := openInput(c.Infile)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out, err := openOutput(c.Outfile)
	if err != nil {
		return err
	}
	defer out.Close()

	if c.Verbose {
		util.Eprintf("mode=%s-%d-%s rounds=%d keybytes=%d input=%d bytes\n",
			opString(c.Mode.op), c.Mode.size, chainString(c.Mode.chain), rounds, len(key), len(data))
	}

	if c.Mode.op == opEncrypt {
		return encrypt(out, data, seed, rounds, c.Mode.chain)
	}
	return decrypt(out, data, seed, rounds, c.Mode.chain)
}

func encrypt(out io.Writer, plaintext []byte, seed [4]uint64, rounds int, ch chain) error {
	nonce := rand.Uint64()

	var ciphertext []byte
	var err error
	switch ch {
	case chainECB:
		ciphertext, err = aes.Cipher(plaintext, seed, rounds)
	case chainCTR:
		ciphertext, err = aes.Ctr(plaintext, seed, rounds, nonce)
	case chainGCM:
		ciphertext, err = aes.GCMEncrypt(plaintext, seed, rounds, nonce)
	}
	if err != nil {
		return err
	}

	var nonceBytes [nonceSize]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
	if _, err := out.Write(nonceBytes[:]); err != nil {
		return err
	}
	_, err = out.Write(ciphertext)
	return err
}

func decrypt(out io.Writer, in []byte, seed [4]uint64, rounds int, ch chain) error {
	if len(in) < nonceSize {
		return fmt.Errorf("input too short to contain a nonce")
	}
	nonce := binary.LittleEndian.Uint64(in[:nonceSize])
	ciphertext := in[nonceSize:]

	var plaintext []byte
	var err error
	switch ch {
	case chainECB:
		plaintext, err = aes.InvCipher(ciphertext, seed, rounds)
	case chainCTR:
		plaintext, err = aes.Ctr(ciphertext, seed, rounds, nonce)
	case chainGCM:
		plaintext, err = aes.GCMDecrypt(ciphertext, seed, rounds, nonce)
	}
	if err != nil {
		return err
	}
	_, err = out.Write(plaintext)
	return err
}

func loadKey(c *cli) ([]byte, error) {
	var key []byte
	if c.Keyfile != "" {
		b, err := os.ReadFile(c.Keyfile)
		if err != nil {
			return nil, fmt.Errorf("reading keyfile: %w", err)
		}
		key = b
	} else {
		fmt.Fprint(os.Stderr, "Enter key: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		key = b
	}

	want := c.Mode.keyBytes()
	if len(key) < want {
		util.Eprintf("warning: key is %d bytes, padding to %d with zeroes\n", len(key), want)
		padded := make([]byte, want)
		copy(padded, key)
		key = padded
	} else if len(key) > want {
		return nil, fmt.Errorf("key is %d bytes, longer than the %d bytes a %d-bit key holds", len(key), want, c.Mode.size)
	}
	return key, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func opString(op operation) string {
	if op == opEncrypt {
		return "ENC"
	}
	return "DEC"
}

func chainString(ch chain) string {
	switch ch {
	case chainECB:
		return "ECB"
	case chainCTR:
		return "CTR"
	default:
		return "GCM"
	}
}
