/*
Package auth provides the building blocks of the Minecraft protocol's login
encryption exchange: an RSA keypair with its DER-encoded public key, a
one-time verify token, PKCS#1 v1.5 decryption of the client's reply, and an
AES-128-CFB8 session cipher derived from the client's shared secret. It also
derives offline-mode player UUIDs. pkg/net generates one KeyPair per server
and uses OfflinePlayerUUID during login, but it does not send an Encryption
Request: sessions run unencrypted.

shardkeeper never contacts Mojang's session servers: it accepts any
username without verifying the player actually owns that account. This is
the deliberate "offline mode" simplification; implementing online-mode
session verification is out of scope.
*/
package auth
