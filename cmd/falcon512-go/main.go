// Command falcon512-go reports how this build of the wrapper is wired:
// the wrapper version, whether the native lattice backend is linked, and a
// quick self-check of the pure-Go coefficient codec.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/latticeforge/falcon512-go/pkg/falcon"
	"github.com/latticeforge/falcon512-go/pkg/falcon/logging"
)

func main() {
	ctx := context.Background()
	log := logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	log.Info(ctx, "falcon512-go",
		"version", falcon.WrapperVersion(),
		"upstream_dir", falcon.UpstreamDir,
		"backend", falcon.BackendAvailable())

	// The hash-to-point mapping works in every build; exercise it as a
	// smoke test.
	hm := falcon.HashToPoint([]byte("falcon512-go self-check"))
	fmt.Printf("hash-to-point: %d coefficients, first: %d %d %d\n", len(hm), hm[0], hm[1], hm[2])

	if !falcon.BackendAvailable() {
		fmt.Println("native backend not linked; key generation, signing and verification unavailable")
		return
	}

	seed := make([]byte, falcon.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	kp, err := falcon.GenerateKeyPair(seed)
	if err != nil {
		log.Error(ctx, "keygen self-check failed", "err", err)
		os.Exit(1)
	}
	defer kp.Zeroize()
	fmt.Printf("keygen: private %d bytes, public %d bytes\n", len(kp.PrivateKey), len(kp.PublicKey))
}
