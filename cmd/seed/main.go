// Seed program: fills a tree with random keys and faker values, deletes part
// of them, then verifies the invariants and prints statistics.
// Run: go run ./cmd/seed -records 10000 -capacity 8
package main

import (
	bplus "TreeDB/bplustree"
	"TreeDB/config"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-faker/faker/v4"
	"go.uber.org/zap"
)

var (
	seedNumRecords = flag.Int("records", 1000, "Amount of records to insert.")
	capacity       = flag.Int("capacity", bplus.DefaultCapacity, "Max keys per node (even, >= 2).")
	deleteFraction = flag.Float64("delete", 0.25, "Fraction of the inserted records to delete again.")
	seed           = flag.Int64("seed", time.Now().UnixNano(), "Random seed for key order.")
	dumpLimit      = flag.Int("dump-limit", 64, "Dump the final tree when it holds at most this many entries.")
	verbose        = flag.Bool("v", false, "Log every split, borrow and merge.")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	cfg.Capacity = *capacity
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	tree, err := bplus.NewBPlusTree(cfg.Capacity, bplus.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	keys := rng.Perm(*seedNumRecords)

	start := time.Now()
	for _, k := range keys {
		tree.Insert(k, faker.Word()+"-"+faker.Word())
	}
	insertTook := time.Since(start)

	toDelete := int(float64(len(keys)) * *deleteFraction)
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	start = time.Now()
	for _, k := range keys[:toDelete] {
		if _, ok := tree.Delete(k); !ok {
			logger.Fatal("seeded key missing", zap.Int("key", k))
		}
	}
	deleteTook := time.Since(start)

	if err := tree.CheckInvariants(); err != nil {
		logger.Fatal("invariants violated", zap.Error(err))
	}

	fmt.Printf("seed:      %d\n", *seed)
	fmt.Printf("capacity:  %d\n", tree.Capacity())
	fmt.Printf("inserted:  %s in %s\n", humanize.Comma(int64(len(keys))), insertTook)
	fmt.Printf("deleted:   %s in %s\n", humanize.Comma(int64(toDelete)), deleteTook)
	fmt.Printf("entries:   %s\n", humanize.Comma(int64(tree.Len())))
	fmt.Printf("height:    %d\n", tree.Height())
	fmt.Printf("checksum:  %016x\n", tree.Checksum())

	if tree.Len() <= *dumpLimit {
		fmt.Println()
		if err := tree.Dump(os.Stdout); err != nil {
			logger.Fatal("dump", zap.Error(err))
		}
	}
}
