// doc.go - Kyber godoc extras.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements the Kyber IND-CCA2-secure key encapsulation
// mechanism (KEM) and its underlying IND-CPA-secure public key encryption
// scheme (CPAPKE), based on the hardness of the learning-with-errors (LWE)
// problem over module lattices.
//
// Three parameter sets are provided: Kyber512, Kyber768 and Kyber1024,
// targeting security roughly equivalent to AES-128, AES-192 and AES-256
// respectively.
//
// Additionally, implementations of the Kyber.AKE and Kyber.UAKE
// authenticated key exchange protocols built on top of the KEM are
// included, for users that need mutual or unilateral authentication.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml.
package kyber
