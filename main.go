package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "classify":
		classifyCmd := flag.NewFlagSet("classify", flag.ExitOnError)
		saveResult := classifyCmd.Bool("save", false, "Persist the result to the classification history")
		asJSON := classifyCmd.Bool("json", false, "Emit the full result as JSON")
		classifyCmd.Parse(os.Args[2:])
		if classifyCmd.NArg() < 1 {
			fmt.Println("Usage: scan-recognition classify [-save] [-json] <image>")
			os.Exit(1)
		}
		runClassify(classifyCmd.Arg(0), *saveResult, *asJSON)
	case "batch":
		batchCmd := flag.NewFlagSet("batch", flag.ExitOnError)
		saveResults := batchCmd.Bool("save", false, "Persist each result to the classification history")
		batchCmd.Parse(os.Args[2:])
		if batchCmd.NArg() < 1 {
			fmt.Println("Usage: scan-recognition batch [-save] <directory>")
			os.Exit(1)
		}
		runBatch(batchCmd.Arg(0), *saveResults)
	case "history":
		historyCmd := flag.NewFlagSet("history", flag.ExitOnError)
		limit := historyCmd.Int("n", 20, "Maximum number of records to show")
		historyCmd.Parse(os.Args[2:])
		runHistory(*limit)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Expected 'classify', 'batch' or 'history' subcommand")
}
