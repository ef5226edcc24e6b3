package e2e

import (
	"encoding/base64"
	"fmt"

	"doc-lab/analysis"
	"doc-lab/extraction"
	"doc-lab/repositories"
	"doc-lab/responder"
	"doc-lab/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config  Config
	Service *services.ChatService
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest builds a fresh pipeline with its own throwaway badger cache, so
// scenarios never observe each other's stored records.
func (s *BaseSuite) SetupTest() {
	log := logs.GetLoggerFromString(s.Config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	s.Service = services.NewChatService(
		extraction.NewExtractor(log),
		analysis.NewAnalyzer(log),
		responder.NewResponder(log),
		repositories.NewAnalysisRepository(db, log),
		log,
		0,
	)
}

// Banner prints a colorized step header in the test log
func (s *BaseSuite) Banner(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}
