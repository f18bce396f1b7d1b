// Command hash-password prints bcrypt hashes suitable for seeding the users
// table. Each argument is checked against the same rules POST /user applies.
//
//	hash-password [-cost 12] 'QWErty123' 'Another1'
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/adboard-api/internal/schema"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	fs.SetOutput(out)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: hash-password [-cost n] password...")
	}

	hasher := auth.NewBcryptHasher(*cost)
	for _, password := range fs.Args() {
		if err := schema.Validate(schema.CreateUser{Username: "seed", Password: password}); err != nil {
			return fmt.Errorf("password %q rejected: %w", password, err)
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", password, hash)
	}
	return nil
}
