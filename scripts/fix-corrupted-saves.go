package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/KirkDiggler/codequest/internal/errors"
	redisclient "github.com/KirkDiggler/codequest/internal/redis"
	playersave "github.com/KirkDiggler/codequest/internal/repositories/player_save"
)

func main() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // exiting anyway
	}()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := playersave.NewRedisRepository(&playersave.RedisConfig{Client: client})
	if err != nil {
		log.Fatal("Failed to create save repository:", err)
	}

	fmt.Println("Connected to Redis:", redisAddr)
	fmt.Println("Scanning for corrupted saves...")

	report, err := scanSaves(ctx, client, repo)
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d saves, found %d corrupted\n", report.checked, len(report.corrupted))

	if len(report.corrupted) == 0 {
		fmt.Println("No corrupted saves found!")
		return
	}

	fmt.Println("\nCorrupted slots:")
	for _, slot := range report.corrupted {
		fmt.Printf("  - %s\n", slot)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these saves? Players restart from scratch. (yes/no): ")
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')

	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, slot := range report.corrupted {
		if _, err := repo.Delete(ctx, playersave.DeleteInput{Slot: slot}); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", slot, err)
		} else {
			fmt.Printf("Deleted %s\n", slot)
		}
	}
	fmt.Println("\nCleanup complete!")
}

type scanReport struct {
	checked   int
	corrupted []string
}

// scanSaves loads every slot through the repository and collects the ones it
// rejects as corrupt. Other load failures abort the scan.
func scanSaves(ctx context.Context, client redisclient.Client, repo playersave.Repository) (*scanReport, error) {
	report := &scanReport{}

	iter := client.Scan(ctx, 0, playersave.SaveKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		slot := strings.TrimPrefix(iter.Val(), playersave.SaveKeyPrefix)
		report.checked++

		_, err := repo.Load(ctx, playersave.LoadInput{Slot: slot})
		switch {
		case err == nil:
		case errors.IsDataLoss(err):
			fmt.Printf("✗ Corrupted save in slot %s\n", slot)
			report.corrupted = append(report.corrupted, slot)
		case errors.IsNotFound(err):
			// deleted between scan and load
			report.checked--
		default:
			return nil, err
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
