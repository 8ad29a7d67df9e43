// Command env2badger copies the API key pair from a .env file into the
// encrypted credential store read by pkg/config.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/betbot/cryptsy/cryptsy/types"
	"github.com/betbot/cryptsy/pkg/secretstore"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

func main() {
	var (
		inPath    = flag.String("in", ".env", "input .env file path")
		dbPath    = flag.String("badger", getenv("CRYPTSY_SECRET_DB", "data/secrets.badger"), "badger secrets db path")
		secretKey = flag.String("secret-key", getenv("CRYPTSY_SECRET_KEY", ""), "badger encryption key (32 bytes base64/hex)")
	)
	flag.Parse()

	if err := run(*inPath, *dbPath, *secretKey); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err.Error())
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "stored credentials in %s\n", *dbPath)
}

func run(inPath, dbPath, secretKey string) error {
	keyBytes, err := secretstore.ParseKey(secretKey)
	if err != nil {
		return err
	}
	if keyBytes == nil {
		return errors.New("secret key is required: set CRYPTSY_SECRET_KEY or pass -secret-key")
	}

	creds, err := readCredentials(inPath)
	if err != nil {
		return err
	}

	ss, err := secretstore.Open(secretstore.OpenOptions{Path: dbPath, EncryptionKey: keyBytes})
	if err != nil {
		return err
	}
	defer ss.Close()

	return ss.SaveCredentials(creds)
}

func readCredentials(path string) (types.Credentials, error) {
	kv, err := godotenv.Read(path)
	if err != nil {
		return types.Credentials{}, errors.Wrapf(err, "read %s", path)
	}
	creds := types.Credentials{
		Key:    strings.TrimSpace(kv["CRYPTSY_PUBLIC_KEY"]),
		Secret: strings.TrimSpace(kv["CRYPTSY_PRIVATE_KEY"]),
	}
	if creds.Empty() {
		return types.Credentials{}, errors.Errorf("%s must set CRYPTSY_PUBLIC_KEY and CRYPTSY_PRIVATE_KEY", path)
	}
	return creds, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
