/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package dataprotect provides the at-rest encryption used for the
// encrypted credential twin. Each payload is sealed with a fresh key;
// cipher text, nonce, tag and key are kept as separate fields so the
// stored row mirrors the encrypted_credentials layout.
package dataprotect

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const (
	keySizeDiv = 8
)

// Payload is one encrypted artifact. All fields are hex encoded.
type Payload struct {
	CipherText string
	IV         string
	Tag        string
	Key        string
	Algorithm  string
}

// AES seals and opens payloads with AES-GCM.
type AES struct {
	keyLength int
}

// NewAES creates AES for the given key length in bits.
func NewAES(keyLength int) *AES {
	return &AES{
		keyLength: keyLength,
	}
}

// Encrypt seals data with a freshly generated key.
func (a *AES) Encrypt(data []byte) (*Payload, error) {
	key := make([]byte, a.keyLength/keySizeDiv)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	sealed := gcm.Seal(nil, nonce, data, nil)

	tagOffset := len(sealed) - gcm.Overhead()

	return &Payload{
		CipherText: hex.EncodeToString(sealed[:tagOffset]),
		IV:         hex.EncodeToString(nonce),
		Tag:        hex.EncodeToString(sealed[tagOffset:]),
		Key:        hex.EncodeToString(key),
		Algorithm:  "AES_GCM",
	}, nil
}

// Decrypt opens a previously sealed payload.
func (a *AES) Decrypt(payload *Payload) ([]byte, error) {
	key, err := hex.DecodeString(payload.Key)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}

	nonce, err := hex.DecodeString(payload.IV)
	if err != nil {
		return nil, fmt.Errorf("decode iv: %w", err)
	}

	cipherText, err := hex.DecodeString(payload.CipherText)
	if err != nil {
		return nil, fmt.Errorf("decode cipher text: %w", err)
	}

	tag, err := hex.DecodeString(payload.Tag)
	if err != nil {
		return nil, fmt.Errorf("decode tag: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(nonce) != gcm.NonceSize() {
		return nil, errors.New("invalid nonce size")
	}

	plaintext, err := gcm.Open(nil, nonce, append(cipherText, tag...), nil)
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}
