package main

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	mintSecret   string
	mintSubject  string
	mintIssuer   string
	mintAudience string
	mintName     string
	mintMarket   string
	mintCurrency string
	mintTTL      time.Duration
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint a signed HS256 test token with realistic session claims",
	RunE:  runMint,
}

func init() {
	mintCmd.Flags().StringVar(&mintSecret, "secret", "jwtfrag-development-secret-0123456789", "HS256 signing secret")
	mintCmd.Flags().StringVar(&mintSubject, "sub", "", "subject (defaults to a random id)")
	mintCmd.Flags().StringVar(&mintIssuer, "iss", "https://auth.example.com", "issuer")
	mintCmd.Flags().StringVar(&mintAudience, "aud", "urn:example:api", "audience")
	mintCmd.Flags().StringVar(&mintName, "name", "Test User", "display name claim")
	mintCmd.Flags().StringVar(&mintMarket, "market", "us-east", "market_id claim")
	mintCmd.Flags().StringVar(&mintCurrency, "currency", "USD", "currency claim")
	mintCmd.Flags().DurationVar(&mintTTL, "ttl", time.Hour, "token lifetime")
	rootCmd.AddCommand(mintCmd)
}

func runMint(cmd *cobra.Command, args []string) error {
	now := time.Now()

	subject := mintSubject
	if subject == "" {
		subject = uuid.NewString()
	}

	claims := jwt.MapClaims{
		"iss":        mintIssuer,
		"aud":        mintAudience,
		"name":       mintName,
		"sub":        subject,
		"session_id": uuid.NewString(),
		"market_id":  mintMarket,
		"currency":   mintCurrency,
		"cart_id":    "cart-" + uuid.NewString()[:8],
		"exp":        now.Add(mintTTL).Unix(),
		"iat":        now.Unix(),
		"jti":        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(mintSecret))
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}

	fmt.Println(signed)
	return nil
}
