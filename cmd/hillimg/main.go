// SPDX-License-Identifier: MIT

// Command hillimg encrypts and decrypts images with a Hill cipher.
//
// Usage:
//
//	hillimg genkey  [-out key.json] [-size 2] [-passphrase] [-salt s]
//	hillimg encrypt [-key key.json] [-size 2] [-no-embed-key] in.png out.png
//	hillimg decrypt [-key key.json] [-meta out_metadata.json] in.png out.png
//	hillimg analyze plain.png cipher.png
//	hillimg preview [-w 256] [-h 256] in.png thumb.png
//
// encrypt creates the key file when it does not exist yet. decrypt falls
// back to the key stored in the metadata sidecar when no key is given.
// HILLIMG_KEY and HILLIMG_KEY_SIZE supply defaults for -key and -size.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usage = `usage: hillimg <command> [flags] [args]

commands:
  genkey   generate a key file
  encrypt  encrypt an image (writes image + _metadata.json sidecar)
  decrypt  decrypt an image
  analyze  compare a plaintext image with its ciphertext
  preview  write a bounded-size thumbnail
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the process streams and logger shared by the subcommands.
type app struct {
	cfg    Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	a := &app{
		cfg:    loadConfig(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    log.New(stderr, "hillimg: ", 0),
	}

	switch args[0] {
	case "genkey":
		return a.genkey(args[1:])
	case "encrypt":
		return a.encrypt(args[1:])
	case "decrypt":
		return a.decrypt(args[1:])
	case "analyze":
		return a.analyze(args[1:])
	case "preview":
		return a.preview(args[1:])
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}
}
