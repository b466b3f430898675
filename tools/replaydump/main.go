package main

import (
	"fmt"
	"os"
	"time"

	"ocean-server/internal/engine"
	"ocean-server/internal/infrastructure/storage"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	rs, err := storage.LoadFile(os.Args[2])
	if err != nil {
		fmt.Printf("Failed to load replay: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "info":
		fmt.Printf("seed:     %d\n", rs.Seed)
		fmt.Printf("recorded: %s\n", time.Unix(rs.Timestamp, 0).Format(time.RFC3339))
		fmt.Printf("actions:  %d\n", len(rs.Actions))
	case "dump":
		for i, a := range rs.Actions {
			fmt.Printf("%4d turn=%-4d %-8s %s\n", i, a.Turn, a.Action, string(a.Payload))
		}
	case "play":
		svc, err := engine.PlayReplay(engine.NewConfig(), *rs)
		if err != nil {
			fmt.Printf("Replay failed: %v\n", err)
			os.Exit(1)
		}
		snap := svc.Snapshot()
		fmt.Printf("turn %d: %s\n", snap.Turn, snap.Status.Message)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Replay Utility - просмотр записанных партий (.ocrp)
Commands:
  info <file>   - сид, время записи и число команд
  dump <file>   - все команды по порядку
  play <file>   - проиграть партию и вывести итоговый статус`)
}
