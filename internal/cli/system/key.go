package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"lifeos/internal/cli"
	"lifeos/internal/keyring"
)

type KeySetCmd struct {
	Key string `arg:"" optional:"" help:"Gemini API key. Falls back to GEMINI_API_KEY from the environment or a .env file."`
}

func (c *KeySetCmd) Run(ctx *cli.Context) error {
	key := c.Key
	if key == "" {
		_ = godotenv.Load()
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("no key given and GEMINI_API_KEY is not set")
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}
	fmt.Println("Stored Gemini API key in the OS keyring")
	return nil
}

type KeyShowCmd struct{}

func (c *KeyShowCmd) Run(ctx *cli.Context) error {
	key, err := keyring.GetAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API key stored. Set one with 'lifeos key set'.")
			return nil
		}
		return err
	}

	fmt.Printf("Gemini API key: %s\n", mask(key))
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API key stored.")
			return nil
		}
		return err
	}
	fmt.Println("Deleted Gemini API key from the OS keyring")
	return nil
}

func mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
