package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := map[string]struct {
		err          *CLIError
		wantCategory ErrorCategory
		wantUsage    string
	}{
		"argument": {
			err:          NewArgumentError("bad argument", "fix it"),
			wantCategory: Argument,
		},
		"argument with usage": {
			err:          NewArgumentErrorWithUsage("bad argument", "chlog add <category> <text>"),
			wantCategory: Argument,
			wantUsage:    "chlog add <category> <text>",
		},
		"configuration": {
			err:          NewConfigError("bad config"),
			wantCategory: Configuration,
		},
		"source": {
			err:          NewSourceError("missing file"),
			wantCategory: Source,
		},
		"document": {
			err:          NewDocumentError("malformed"),
			wantCategory: Document,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantUsage, tt.err.Usage)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("preserves the original message", func(t *testing.T) {
		err := Wrap(stderrors.New("boom"), Source)
		require.NotNil(t, err)
		assert.Equal(t, "boom", err.Message)
		assert.Equal(t, Source, err.Category)
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Source))
		assert.Nil(t, WrapWithMessage(nil, Source, "context"))
	})

	t.Run("with message prefixes context", func(t *testing.T) {
		err := WrapWithMessage(stderrors.New("boom"), Configuration, "loading config")
		require.NotNil(t, err)
		assert.Equal(t, "loading config: boom", err.Message)
	})
}

func TestIsAndAsCLIError(t *testing.T) {
	cliErr := NewConfigError("bad config")
	plain := stderrors.New("boom")

	assert.True(t, IsCLIError(cliErr))
	assert.False(t, IsCLIError(plain))

	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(plain))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Argument Error", Argument.String())
	assert.Equal(t, "Configuration Error", Configuration.String())
	assert.Equal(t, "Source Error", Source.String())
	assert.Equal(t, "Document Error", Document.String())
	assert.Equal(t, "Error", ErrorCategory(99).String())
}
