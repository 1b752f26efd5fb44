package main

import (
	"crypto/sha256"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shardkeeper/shardkeeper/pkg/auth"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a login-encryption RSA keypair and print its fingerprint",
	RunE:  runKeygen,
}

func runKeygen(cmd *cobra.Command, args []string) error {
	kp, err := auth.NewKeyPair()
	if err != nil {
		return fmt.Errorf("generate keypair: %w", err)
	}

	der, err := kp.PublicKeyDER()
	if err != nil {
		return fmt.Errorf("marshal public key: %w", err)
	}

	sum := sha256.Sum256(der)
	fmt.Printf("SHA256:%x\n", sum)
	return nil
}
