// Command timeutill prints build stamps for -ldflags and converts times.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nancyzera/jurassic-game/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "now":
		fmt.Println(time.Now().Unix())
	case "date":
		fmt.Println(time.Now().UTC().Format("2006-01-02"))
	case "buildid":
		version.BuildDate = time.Now().UTC().Format("2006-01-02")
		if len(os.Args) >= 3 {
			version.BuildDate = os.Args[2]
		}
		id, err := version.CalculateBuildID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(id)
	case "format":
		if len(os.Args) < 3 {
			fmt.Println("Usage: timeutill format <unix_timestamp>")
			return
		}
		ts, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid timestamp: %v\n", err)
			return
		}
		fmt.Println(time.Unix(ts, 0).UTC().Format(time.RFC3339))
	case "parse":
		if len(os.Args) < 3 {
			fmt.Println("Usage: timeutill parse <date_string>")
			return
		}
		t, err := time.Parse("2006-01-02 15:04:05", os.Args[2])
		if err != nil {
			fmt.Printf("Invalid date: %v\n", err)
			return
		}
		fmt.Println(t.Unix())
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`timeutill - build stamps and Unix time helpers
Commands:
  now                  - current Unix time
  date                 - today's UTC date, for -X .../version.BuildDate
  buildid [YYYY-MM-DD] - build number for a date (default: today)
  format <timestamp>   - Unix time to RFC3339 (UTC)
  parse <date_string>  - "YYYY-MM-DD HH:MM:SS" (UTC) to Unix time`)
}
