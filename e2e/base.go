package e2e

import (
	"fmt"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests.
// Scenarios need a reachable SMTP server, so the whole suite is skipped
// when no host is configured.
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.Host == "" {
		s.T().Skip("SANTA_E2E_SMTP_HOST not set, skipping live delivery scenarios")
	}
}

// Header prints a colorized banner for the current scenario step in logs
func (s *BaseSuite) Header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}
