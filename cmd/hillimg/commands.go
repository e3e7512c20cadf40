// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/katalvlaran/hillimg/analysis"
	"github.com/katalvlaran/hillimg/hill"
	"github.com/katalvlaran/hillimg/imagecodec"
)

// defaultSalt is used by genkey -passphrase when -salt is not given, so the
// same passphrase always reproduces the same key.
const defaultSalt = "hillimg"

func (a *app) flagSet(name, args string) *flag.FlagSet {
	cmd := flag.NewFlagSet(name, flag.ContinueOnError)
	cmd.SetOutput(a.stderr)
	cmd.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: hillimg %s [flags] %s\n", name, args)
		cmd.PrintDefaults()
	}
	return cmd
}

// parse parses args and checks the positional count.
func parse(cmd *flag.FlagSet, args []string, positional int) bool {
	if err := cmd.Parse(args); err != nil {
		return false
	}
	if cmd.NArg() != positional {
		cmd.Usage()
		return false
	}
	return true
}

func (a *app) report(res hill.Result) int {
	if !res.OK {
		a.log.Printf("Error: %s", res.Message)
		return exitFail
	}
	fmt.Fprintf(a.stdout, "Success: %s\n", res.Message)
	return exitOK
}

func (a *app) genkey(args []string) int {
	cmd := a.flagSet("genkey", "")
	out := cmd.String("out", firstNonEmpty(a.cfg.KeyPath, defaultKeyFile), "key file to write")
	size := cmd.Int("size", a.cfg.KeySize, "key matrix size N (NxN)")
	usePass := cmd.Bool("passphrase", false, "derive the key from a passphrase read from the terminal")
	salt := cmd.String("salt", defaultSalt, "salt for -passphrase")
	if !parse(cmd, args, 0) {
		return exitUsage
	}

	c := hill.New(hill.WithLogger(a.log))
	var err error
	if *usePass {
		var pass []byte
		if pass, err = a.readPassphrase("Passphrase: "); err != nil {
			a.log.Printf("Error: %v", err)
			return exitFail
		}
		_, err = c.DeriveKey(pass, []byte(*salt), *size)
	} else {
		_, err = c.GenerateKey(*size)
	}
	if err != nil {
		a.log.Printf("Error: %v", err)
		return exitFail
	}
	if err = c.SaveKey(*out); err != nil {
		a.log.Printf("Error: %v", err)
		return exitFail
	}

	fmt.Fprintf(a.stdout, "Key saved to: %s\nKey matrix:\n%s", *out, c.Key())
	return exitOK
}

func (a *app) encrypt(args []string) int {
	cmd := a.flagSet("encrypt", "in out")
	keyPath := cmd.String("key", firstNonEmpty(a.cfg.KeyPath, defaultKeyFile), "key file; created when missing")
	size := cmd.Int("size", a.cfg.KeySize, "size of a newly generated key")
	noEmbed := cmd.Bool("no-embed-key", false, "do not copy the key into the metadata sidecar")
	if !parse(cmd, args, 2) {
		return exitUsage
	}
	in, out := cmd.Arg(0), cmd.Arg(1)

	c := hill.New(hill.WithLogger(a.log), hill.WithEmbeddedKey(!*noEmbed))
	_, statErr := os.Stat(*keyPath)
	switch {
	case statErr == nil:
		if err := c.LoadKey(*keyPath); err != nil {
			a.log.Printf("Error: failed to load key from %q: %v", *keyPath, err)
			return exitFail
		}
	case errors.Is(statErr, fs.ErrNotExist):
		a.log.Printf("key file %s not found, generating a new %dx%d key", *keyPath, *size, *size)
		if _, err := c.GenerateKey(*size); err != nil {
			a.log.Printf("Error: %v", err)
			return exitFail
		}
		if err := c.SaveKey(*keyPath); err != nil {
			a.log.Printf("Error: %v", err)
			return exitFail
		}
	default:
		a.log.Printf("Error: %v", statErr)
		return exitFail
	}

	return a.report(c.EncryptFile(in, out))
}

func (a *app) decrypt(args []string) int {
	cmd := a.flagSet("decrypt", "in out")
	keyPath := cmd.String("key", a.cfg.KeyPath, "key file; default is the key embedded in the metadata")
	metaPath := cmd.String("meta", "", "metadata sidecar; default derives it from the input name")
	if !parse(cmd, args, 2) {
		return exitUsage
	}

	c := hill.New(hill.WithLogger(a.log))
	if *keyPath != "" {
		if err := c.LoadKey(*keyPath); err != nil {
			a.log.Printf("Error: failed to load key from %q: %v", *keyPath, err)
			return exitFail
		}
	}

	return a.report(c.DecryptFile(cmd.Arg(0), cmd.Arg(1), *metaPath))
}

func (a *app) analyze(args []string) int {
	cmd := a.flagSet("analyze", "plain cipher")
	if !parse(cmd, args, 2) {
		return exitUsage
	}

	plain, err := imagecodec.LoadPixels(cmd.Arg(0))
	if err != nil {
		a.log.Printf("Error: %v", err)
		return exitFail
	}
	cipher, err := imagecodec.LoadPixelsMode(cmd.Arg(1), plain.Mode)
	if err != nil {
		a.log.Printf("Error: %v", err)
		return exitFail
	}
	rep, err := analysis.Compare(plain, cipher)
	if err != nil {
		a.log.Printf("Error: %v", err)
		return exitFail
	}

	fmt.Fprint(a.stdout, rep.String())
	return exitOK
}

func (a *app) preview(args []string) int {
	cmd := a.flagSet("preview", "in out")
	w := cmd.Uint("w", 256, "maximum width")
	h := cmd.Uint("h", 256, "maximum height")
	if !parse(cmd, args, 2) {
		return exitUsage
	}

	img, err := imagecodec.ReadImage(cmd.Arg(0))
	if err != nil {
		a.log.Printf("Error: %v", err)
		return exitFail
	}
	thumb, err := analysis.Thumbnail(img, *w, *h)
	if err != nil {
		a.log.Printf("Error: %v", err)
		return exitFail
	}
	if err = imagecodec.WriteImage(cmd.Arg(1), thumb); err != nil {
		a.log.Printf("Error: %v", err)
		return exitFail
	}

	b := thumb.Bounds()
	fmt.Fprintf(a.stdout, "Preview %dx%d written to %s\n", b.Dx(), b.Dy(), cmd.Arg(1))
	return exitOK
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
