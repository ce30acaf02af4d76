package hilberttesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	// We seed the RNG of the generators from Seed. It is normal to force it to
	// some fixed value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // can be "" defaults to INFO
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NewGenerator returns a generator for the curve of order m in n dimensions
func (c *TestContext) NewGenerator(seed int64, m, n uint) *TestGenerator {
	c.Log.Debugf("generator: seed=%d, m=%d, n=%d", seed, m, n)
	return NewTestGenerator(c.T, seed, TestGeneratorConfig{Order: m, Dimensions: n})
}
