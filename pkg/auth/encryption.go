package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
)

// rsaKeySize matches the key size real Minecraft servers generate for the
// login encryption exchange.
const rsaKeySize = 1024

// verifyTokenSize is the length of the random token the server sends the
// client and expects echoed back, encrypted, unchanged.
const verifyTokenSize = 4

// KeyPair holds a session's RSA keypair, generated fresh per server
// process rather than persisted: shardkeeper never needs to verify a
// returning client against a prior key.
type KeyPair struct {
	private *rsa.PrivateKey
}

// NewKeyPair generates a fresh RSA keypair for the login encryption
// exchange.
func NewKeyPair() (*KeyPair, error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeySize)
	if err != nil {
		return nil, fmt.Errorf("auth: generate rsa key: %w", err)
	}
	return &KeyPair{private: key}, nil
}

// PublicKeyDER returns the ASN.1 DER encoding of the public key, the form
// the Encryption Request packet sends on the wire.
func (kp *KeyPair) PublicKeyDER() ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(&kp.private.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("auth: marshal public key: %w", err)
	}
	return der, nil
}

// Decrypt decrypts data with PKCS#1 v1.5 padding using the keypair's
// private key, the scheme the client uses to encrypt both the shared
// secret and the verify token in its Encryption Response.
func (kp *KeyPair) Decrypt(data []byte) ([]byte, error) {
	out, err := rsa.DecryptPKCS1v15(rand.Reader, kp.private, data)
	if err != nil {
		return nil, fmt.Errorf("auth: rsa decrypt: %w", err)
	}
	return out, nil
}

// NewVerifyToken returns a fresh random token to send in the Encryption
// Request.
func NewVerifyToken() ([]byte, error) {
	token := make([]byte, verifyTokenSize)
	if _, err := rand.Read(token); err != nil {
		return nil, fmt.Errorf("auth: generate verify token: %w", err)
	}
	return token, nil
}

// SessionCipher wraps the AES-128-CFB8 stream the protocol uses once
// encryption is enabled: the same key and IV (the raw shared secret,
// reused as both) drive independent encrypt and decrypt streams.
type SessionCipher struct {
	encrypt cipher.Stream
	decrypt cipher.Stream
}

// NewSessionCipher derives encrypt/decrypt streams from the decrypted
// shared secret. sharedSecret must be exactly 16 bytes (AES-128).
func NewSessionCipher(sharedSecret []byte) (*SessionCipher, error) {
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("auth: new aes cipher: %w", err)
	}
	return &SessionCipher{
		encrypt: newCFB8Encrypter(block, sharedSecret),
		decrypt: newCFB8Decrypter(block, sharedSecret),
	}, nil
}

// Encrypt encrypts dst in place from src using the session's outbound
// stream.
func (s *SessionCipher) Encrypt(dst, src []byte) { s.encrypt.XORKeyStream(dst, src) }

// Decrypt decrypts dst in place from src using the session's inbound
// stream.
func (s *SessionCipher) Decrypt(dst, src []byte) { s.decrypt.XORKeyStream(dst, src) }

// OfflinePlayerUUID derives a deterministic UUID for a username the way a
// server running without Mojang session verification does: a version-3
// (name-based, MD5) hash of "OfflinePlayer:<name>", with the version and
// variant bits fixed up.
func OfflinePlayerUUID(username string) [16]byte {
	sum := md5.Sum([]byte("OfflinePlayer:" + username))
	var uuid [16]byte
	copy(uuid[:], sum[:])
	uuid[6] = (uuid[6] & 0x0f) | 0x30 // version 3
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // RFC 4122 variant
	return uuid
}

// cfb8 is a non-standard stream-cipher mode the Minecraft protocol uses:
// standard crypto/cipher only ships CFB with a full block-size feedback
// segment (NewCFBEncrypter), not the single-byte feedback segment CFB8
// requires, so it is implemented directly here.
type cfb8 struct {
	b       cipher.Block
	shift   []byte
	tmp     []byte
	decrypt bool
}

func newCFB8Encrypter(b cipher.Block, iv []byte) cipher.Stream {
	return newCFB8(b, iv, false)
}

func newCFB8Decrypter(b cipher.Block, iv []byte) cipher.Stream {
	return newCFB8(b, iv, true)
}

func newCFB8(b cipher.Block, iv []byte, decrypt bool) *cfb8 {
	shift := make([]byte, len(iv))
	copy(shift, iv)
	return &cfb8{b: b, shift: shift, tmp: make([]byte, b.BlockSize()), decrypt: decrypt}
}

func (c *cfb8) XORKeyStream(dst, src []byte) {
	bs := c.b.BlockSize()
	for i := range src {
		c.b.Encrypt(c.tmp, c.shift)
		out := src[i] ^ c.tmp[0]

		feedback := out
		if c.decrypt {
			feedback = src[i]
		}
		copy(c.shift, c.shift[1:])
		c.shift[bs-1] = feedback

		dst[i] = out
	}
}
