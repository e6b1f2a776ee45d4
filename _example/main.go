package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/bloomgo"
	"github.com/hupe1980/bloomgo/blobstore"
	"github.com/hupe1980/bloomgo/snapshot"
)

func main() {
	size := 50000

	bf, err := bloomgo.New(bloomgo.DefaultBitsPerElement, size)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Add ---")
	fmt.Println("Bits:", bf.Bits())
	fmt.Println("Size:", size)

	start := time.Now()

	for i := 0; i < size; i++ {
		bf.AddString(fmt.Sprintf("user-%d@example.com", i))
	}

	end := time.Since(start)

	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	stats := bf.Stats()
	fmt.Printf("Load factor: %.4f\n", stats.LoadFactor)
	fmt.Printf("Estimated false positive rate: %.4f\n\n", stats.FalsePositiveRate)

	fmt.Println("--- Exists ---")
	fmt.Println("user-42@example.com:", bf.ExistsString("user-42@example.com"))
	fmt.Println("nobody@example.com:", bf.ExistsString("nobody@example.com"))
	fmt.Println()

	fmt.Println("--- SubstringExists ---")

	start = time.Now()

	hit := bf.SubstringExistsString("mail from user-42@example.com today", len("user-42@example.com"))

	end = time.Since(start)

	fmt.Println("Hit:", hit)
	fmt.Printf("Seconds: %.8f\n\n", end.Seconds())

	fmt.Println("--- Snapshot ---")

	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	if err := snapshot.Save(ctx, store, "users.bloom", bf, func(o *snapshot.Options) {
		o.Compression = snapshot.CompressionZSTD
	}); err != nil {
		log.Fatal(err)
	}

	restored, err := snapshot.Load(ctx, store, "users.bloom", func(o *snapshot.Options) {
		o.Compression = snapshot.CompressionZSTD
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Restored user-42@example.com:", restored.ExistsString("user-42@example.com"))
}
