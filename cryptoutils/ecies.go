// Package cryptoutils provides the asymmetric encryption used for purchaser
// names. Names are encrypted under the registry owner's secp256k1 public key
// before they are submitted to the store, so only the owner can ever read who
// purchased a gift; the chain and the relayer see opaque ciphertext.
package cryptoutils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"
)

// ParseRecipientKey parses a hex-encoded secp256k1 public key, either
// compressed (33 bytes) or uncompressed (65 bytes), with or without a 0x
// prefix.
func ParseRecipientKey(hexKey string) (*ecies.PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid recipient key hex: %w", err)
	}

	switch len(raw) {
	case 33:
		pub, err := crypto.DecompressPubkey(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid compressed recipient key: %w", err)
		}
		return ecies.ImportECDSAPublic(pub), nil
	case 65:
		pub, err := crypto.UnmarshalPubkey(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid uncompressed recipient key: %w", err)
		}
		return ecies.ImportECDSAPublic(pub), nil
	default:
		return nil, errors.New("recipient key must be 33 or 65 bytes")
	}
}

// EncryptPurchaserName encrypts name under the recipient's public key using
// ECIES (ECDH key agreement, SHA-256 KDF, AES-CTR with HMAC). A fresh
// ephemeral key is generated for every call, so encrypting the same name
// twice yields different ciphertexts. On error no plaintext is returned.
func EncryptPurchaserName(recipient *ecies.PublicKey, name string) ([]byte, error) {
	if recipient == nil {
		return nil, errors.New("no recipient key")
	}
	if name == "" {
		return nil, errors.New("empty purchaser name")
	}

	ciphertext, err := ecies.Encrypt(rand.Reader, recipient, []byte(name), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("ecies encryption failed: %w", err)
	}
	return ciphertext, nil
}

// DecryptPurchaserName decrypts a ciphertext produced by EncryptPurchaserName
// with the recipient's hex-encoded private key. Used by the owner tooling to
// reveal who purchased an item.
func DecryptPurchaserName(privateKeyHex string, ciphertext []byte) (string, error) {
	priv, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}

	plaintext, err := ecies.ImportECDSA(priv).Decrypt(ciphertext, nil, nil)
	if err != nil {
		return "", fmt.Errorf("ecies decryption failed: %w", err)
	}
	return string(plaintext), nil
}
