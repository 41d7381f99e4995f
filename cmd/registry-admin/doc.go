// Command registry-admin is the owner's tool for managing the gift registry
// contract: adding, updating, removing and resetting items, transferring
// ownership, listing items, and revealing who purchased a gift by decrypting
// the stored purchaser name with the owner key.
package main
