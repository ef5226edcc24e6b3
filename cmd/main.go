package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strconv"

	"doc-lab/analysis"
	"doc-lab/domain"
	"doc-lab/extraction"
	"doc-lab/internal"
	"doc-lab/repositories"
	"doc-lab/responder"
	"doc-lab/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and drives the interactive loop.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
func run() error {
	filePath := flag.String("file", "", "File to load as the conversation payload")
	noCache := flag.Bool("no-cache", false, "Disable the on-disk analysis cache")
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB), unless caching is disabled
	var repository repositories.IAnalysisRepository
	if !*noCache {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.ERROR))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		//  Defer will be executed before run() returned anything to main()
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		repository = repositories.NewAnalysisRepository(db, log)
	}

	// 3. Pipeline
	extractor := extraction.NewExtractor(log)
	analyzer := analysis.NewAnalyzer(log)
	service := services.NewChatService(
		extractor,
		analyzer,
		responder.NewResponder(log),
		repository,
		log,
		config.MaxContentLength,
	)

	// 4. Optional payload from disk
	payload, err := loadPayload(*filePath)
	if err != nil {
		return err
	}
	if payload != nil {
		color.Green.Printf("Loaded %s (%s)\n", *filePath, payload.MimeType)
	} else {
		color.Yellow.Println("No file loaded; conversation mode only. Use -file to analyze a document.")
	}

	return loop(service, extractor, analyzer, payload, config.HistoryLimit)
}

func loadPayload(path string) (*domain.Payload, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &domain.Payload{
		Data:     base64.StdEncoding.EncodeToString(data),
		MimeType: mimetype.Detect(data).String(),
	}, nil
}

func loop(
	service services.IChatService,
	extractor *extraction.Extractor,
	analyzer *analysis.Analyzer,
	payload *domain.Payload,
	historyLimit int,
) error {
	ctx := context.Background()
	var history []domain.Turn
	scanner := bufio.NewScanner(os.Stdin)

	color.Cyan.Println("Type a question, /record for the analysis record, /quit to exit.")
	for {
		color.Cyan.Print("you> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		message := scanner.Text()
		switch message {
		case "":
			continue
		case "/quit":
			return nil
		case "/record":
			printRecord(extractor, analyzer, payload)
			continue
		}

		reply, err := service.Respond(ctx, services.ChatRequest{
			Message: message,
			Payload: payload,
			History: history,
		})
		if err != nil {
			color.Red.Printf("error: %v\n", err)
			continue
		}
		color.Green.Printf("assistant> %s\n\n", reply)

		history = append(history,
			domain.Turn{Role: domain.RoleUser, Content: message},
			domain.Turn{Role: domain.RoleAssistant, Content: reply},
		)
		if historyLimit > 0 && len(history) > historyLimit {
			history = history[len(history)-historyLimit:]
		}
	}
}

func printRecord(extractor *extraction.Extractor, analyzer *analysis.Analyzer, payload *domain.Payload) {
	if payload == nil {
		color.Yellow.Println("No file loaded.")
		return
	}
	text, ok := extractor.Extract(*payload)
	if !ok {
		color.Red.Println("No readable text in the loaded file.")
		return
	}
	record := analyzer.Analyze(text, payload.MimeType)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{"Words", strconv.Itoa(record.WordCount)})
	table.Append([]string{"Sentences", strconv.Itoa(len(record.Sentences))})
	table.Append([]string{"Nouns", strconv.Itoa(len(record.Nouns))})
	table.Append([]string{"Verbs", strconv.Itoa(len(record.Verbs))})
	table.Append([]string{"People", fmt.Sprintf("%v", record.People)})
	table.Append([]string{"Places", fmt.Sprintf("%v", record.Places)})
	table.Append([]string{"Organizations", fmt.Sprintf("%v", record.Organizations)})
	table.Append([]string{"Topics", fmt.Sprintf("%v", record.Topics)})
	table.Append([]string{"Keywords", fmt.Sprintf("%v", record.Keywords)})
	table.Append([]string{"Sentiment", fmt.Sprintf("%d (%s)", record.Sentiment.Score, record.Sentiment.Label())})
	table.Append([]string{"Language", record.Language})
	table.Append([]string{"MIME type", record.MimeType})
	table.Render()
}
