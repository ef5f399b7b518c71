package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"word-count/jobs/wordcount"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: go run wordcount.go [config.json]")
	}
	cfg, err := wordcount.LoadConfig(os.Args[1])
	if err != nil {
		log.Fatalf("%v", err)
	}
	kva, err := wordcount.Run(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	writer := bufio.NewWriter(os.Stdout)
	for _, kv := range kva {
		fmt.Fprintf(writer, "%v %v\n", kv.Key, kv.Value)
	}
	if err := writer.Flush(); err != nil {
		log.Fatalf("cannot flush: %v", err)
	}
}
