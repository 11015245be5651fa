// main.go - kyber CLI: PKE and KEM keygen/encrypt/decrypt over hex-encoded
// files.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/latticeforge/kyber"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:  "kyber",
		Usage: "Kyber post-quantum public-key encryption and key encapsulation",
		Commands: []*cli.Command{
			pkeCommand(),
			kemCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("kyber: command failed")
		os.Exit(1)
	}
}

func specFlag() *cli.IntFlag {
	return &cli.IntFlag{Name: "spec", Value: 512, Usage: "parameter set: 512, 768 or 1024"}
}

func parameterSet(c *cli.Context) (*kyber.ParameterSet, error) {
	ps := kyber.ParameterSetByName(c.Int("spec"))
	if ps == nil {
		return nil, errors.Errorf("kyber: unknown --spec %d, want 512, 768 or 1024", c.Int("spec"))
	}
	return ps, nil
}

func pkeCommand() *cli.Command {
	return &cli.Command{
		Name:  "pke",
		Usage: "IND-CPA public-key encryption (Kyber.CPAPKE)",
		Subcommands: []*cli.Command{
			{
				Name: "keygen",
				Flags: []cli.Flag{
					specFlag(),
					&cli.StringFlag{Name: "out-pubkey", Value: "kyber_key.pub"},
					&cli.StringFlag{Name: "out-privkey", Value: "kyber_key.priv"},
				},
				Action: pkeKeyGenAction,
			},
			{
				Name: "encrypt",
				Flags: []cli.Flag{
					specFlag(),
					&cli.StringFlag{Name: "in-pubkey", Value: "kyber_key.pub"},
					&cli.StringFlag{Name: "in-plaintext", Required: true},
					&cli.StringFlag{Name: "out-ciphertext"},
				},
				Action: pkeEncryptAction,
			},
			{
				Name: "decrypt",
				Flags: []cli.Flag{
					specFlag(),
					&cli.StringFlag{Name: "in-privkey", Value: "kyber_key.priv"},
					&cli.StringFlag{Name: "in-ciphertext", Required: true},
					&cli.StringFlag{Name: "out-plaintext"},
				},
				Action: pkeDecryptAction,
			},
		},
	}
}

func kemCommand() *cli.Command {
	return &cli.Command{
		Name:  "kem",
		Usage: "IND-CCA2 key encapsulation (Kyber.KEM)",
		Subcommands: []*cli.Command{
			{
				Name: "keygen",
				Flags: []cli.Flag{
					specFlag(),
					&cli.StringFlag{Name: "out-pubkey", Value: "kyber_kem_key.pub"},
					&cli.StringFlag{Name: "out-privkey", Value: "kyber_kem_key.priv"},
				},
				Action: kemKeyGenAction,
			},
			{
				Name: "encrypt",
				Flags: []cli.Flag{
					specFlag(),
					&cli.StringFlag{Name: "in-pubkey", Value: "kyber_kem_key.pub"},
					&cli.StringFlag{Name: "out-ciphertext", Value: "kyber_ciphertext.txt"},
					&cli.StringFlag{Name: "out-shared", Value: "kyber_kem_shared_key.txt"},
					&cli.IntFlag{Name: "key-size", Value: 32},
				},
				Action: kemEncryptAction,
			},
			{
				Name: "decrypt",
				Flags: []cli.Flag{
					specFlag(),
					&cli.StringFlag{Name: "in-privkey", Value: "kyber_kem_key.priv"},
					&cli.StringFlag{Name: "in-ciphertext", Value: "kyber_ciphertext.txt"},
					&cli.StringFlag{Name: "out-shared"},
					&cli.IntFlag{Name: "key-size", Value: 32},
				},
				Action: kemDecryptAction,
			},
		},
	}
}

func pkeKeyGenAction(c *cli.Context) error {
	ps, err := parameterSet(c)
	if err != nil {
		return err
	}

	seed := make([]byte, kyber.SymSize)
	if _, err := rand.Read(seed); err != nil {
		return errors.Wrap(err, "kyber: reading entropy")
	}

	pk, sk, err := kyber.CPAPKEKeyGen(ps, seed)
	if err != nil {
		return err
	}

	if err := writeHexFile(c.String("out-pubkey"), pk); err != nil {
		return err
	}
	if err := writeHexFile(c.String("out-privkey"), sk); err != nil {
		return err
	}
	log.Info().Str("spec", ps.Name()).Msg("kyber: pke keypair written")
	return nil
}

func pkeEncryptAction(c *cli.Context) error {
	ps, err := parameterSet(c)
	if err != nil {
		return err
	}

	pk, err := readHexFile(c.String("in-pubkey"))
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(c.String("in-plaintext"))
	if err != nil {
		return errors.Wrap(err, "kyber: reading plaintext")
	}

	var ciphertext []byte
	for _, chunk := range chunkPad(plaintext, kyber.SymSize) {
		coin := make([]byte, kyber.SymSize)
		if _, err := rand.Read(coin); err != nil {
			return errors.Wrap(err, "kyber: reading entropy")
		}
		ct, err := kyber.CPAPKEEncrypt(ps, pk, chunk, coin)
		if err != nil {
			return err
		}
		ciphertext = append(ciphertext, ct...)
	}

	return emitHex(c.String("out-ciphertext"), ciphertext)
}

func pkeDecryptAction(c *cli.Context) error {
	ps, err := parameterSet(c)
	if err != nil {
		return err
	}

	sk, err := readHexFile(c.String("in-privkey"))
	if err != nil {
		return err
	}

	ciphertext, err := readHexFile(c.String("in-ciphertext"))
	if err != nil {
		return err
	}

	ctSize := ps.CipherTextSize()
	var plaintext []byte
	for _, chunk := range chunkPad(ciphertext, ctSize) {
		msg, err := kyber.CPAPKEDecrypt(ps, sk, chunk)
		if err != nil {
			return err
		}
		plaintext = append(plaintext, msg...)
	}

	return emitText(c.String("out-plaintext"), stripTrailingNUL(plaintext))
}

func kemKeyGenAction(c *cli.Context) error {
	ps, err := parameterSet(c)
	if err != nil {
		return err
	}

	seed := make([]byte, 2*kyber.SymSize)
	if _, err := rand.Read(seed); err != nil {
		return errors.Wrap(err, "kyber: reading entropy")
	}

	pk, sk, err := kyber.GenerateKeyPair(ps, seed)
	if err != nil {
		return err
	}

	if err := writeHexFile(c.String("out-pubkey"), pk.Bytes()); err != nil {
		return err
	}
	if err := writeHexFile(c.String("out-privkey"), sk.Bytes()); err != nil {
		return err
	}
	log.Info().Str("spec", ps.Name()).Msg("kyber: kem keypair written")
	return nil
}

func kemEncryptAction(c *cli.Context) error {
	ps, err := parameterSet(c)
	if err != nil {
		return err
	}

	pkBytes, err := readHexFile(c.String("in-pubkey"))
	if err != nil {
		return err
	}
	pk, err := kyber.LoadPublicKey(ps, pkBytes)
	if err != nil {
		return err
	}

	seed := make([]byte, kyber.SymSize)
	if _, err := rand.Read(seed); err != nil {
		return errors.Wrap(err, "kyber: reading entropy")
	}

	ct, shared, err := kyber.Encapsulate(pk, seed, c.Int("key-size"))
	if err != nil {
		return err
	}

	if err := writeHexFile(c.String("out-ciphertext"), ct); err != nil {
		return err
	}
	return writeHexFile(c.String("out-shared"), shared)
}

func kemDecryptAction(c *cli.Context) error {
	ps, err := parameterSet(c)
	if err != nil {
		return err
	}

	skBytes, err := readHexFile(c.String("in-privkey"))
	if err != nil {
		return err
	}
	sk, err := kyber.LoadPrivateKey(ps, skBytes)
	if err != nil {
		return err
	}

	ct, err := readHexFile(c.String("in-ciphertext"))
	if err != nil {
		return err
	}

	shared, err := kyber.Decapsulate(sk, ct, c.Int("key-size"))
	if err != nil {
		return err
	}

	return emitHex(c.String("out-shared"), shared)
}

// chunkPad splits b into chunks of exactly size bytes, zero-padding the
// final chunk if necessary.
func chunkPad(b []byte, size int) [][]byte {
	if len(b) == 0 {
		return [][]byte{make([]byte, size)}
	}
	var out [][]byte
	for i := 0; i < len(b); i += size {
		end := i + size
		if end > len(b) {
			chunk := make([]byte, size)
			copy(chunk, b[i:])
			out = append(out, chunk)
			break
		}
		out = append(out, b[i:end])
	}
	return out
}

// stripTrailingNUL removes zero-padding introduced by chunkPad at encrypt
// time, so decrypted plaintext that does not itself end in NUL bytes
// round-trips to its original byte length.
func stripTrailingNUL(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}

func readHexFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "kyber: reading %s", path)
	}
	decoded, err := hex.DecodeString(trimNewline(string(raw)))
	if err != nil {
		return nil, errors.Wrapf(err, "kyber: decoding hex in %s", path)
	}
	return decoded, nil
}

func writeHexFile(path string, b []byte) error {
	if err := os.WriteFile(path, []byte(hex.EncodeToString(b)), 0o600); err != nil {
		return errors.Wrapf(err, "kyber: writing %s", path)
	}
	return nil
}

// emitHex writes hex-encoded data to path, or to stdout if path is empty.
func emitHex(path string, b []byte) error {
	if path == "" {
		_, err := os.Stdout.WriteString(hex.EncodeToString(b))
		return err
	}
	return writeHexFile(path, b)
}

// emitText writes raw bytes to path, or to stdout if path is empty.
func emitText(path string, b []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return errors.Wrapf(err, "kyber: writing %s", path)
	}
	return nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
