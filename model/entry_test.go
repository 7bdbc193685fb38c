package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakePreviewShortContentUnchanged(t *testing.T) {
	assert.Equal(t, "hello", MakePreview("hello"))
	assert.Equal(t, strings.Repeat("a", PreviewLength), MakePreview(strings.Repeat("a", PreviewLength)))
}

func TestMakePreviewTruncatesWithEllipsis(t *testing.T) {
	content := strings.Repeat("a", PreviewLength+1)

	preview := MakePreview(content)

	assert.Equal(t, strings.Repeat("a", PreviewLength)+"...", preview)
}

func TestMakePreviewCountsRunesNotBytes(t *testing.T) {
	// 中文内容按字符截断，不能切在多字节字符中间
	content := strings.Repeat("剪", PreviewLength+5)

	preview := MakePreview(content)

	assert.Equal(t, strings.Repeat("剪", PreviewLength)+"...", preview)
}

func TestDisplayPreviewCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", DisplayPreview("a\nb\r\n\tc"))
	assert.Equal(t, "a b", DisplayPreview("a    b"))
	assert.Equal(t, "trimmed", DisplayPreview("  trimmed  \n"))
}

func TestDisplayPreviewTruncates(t *testing.T) {
	content := strings.Repeat("x", PreviewLength+50)

	assert.Equal(t, strings.Repeat("x", PreviewLength)+"...", DisplayPreview(content))
}

func TestNewHistoryEntry(t *testing.T) {
	entry := NewHistoryEntry("content")

	require.NotNil(t, entry)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "content", entry.Content)
	assert.Equal(t, "content", entry.Preview)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	// 旧版本文件只有 content 字段
	entry := &HistoryEntry{Content: strings.Repeat("b", PreviewLength+1)}

	entry.Normalize()

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, strings.Repeat("b", PreviewLength)+"...", entry.Preview)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestNormalizeKeepsExistingFields(t *testing.T) {
	entry := NewHistoryEntry("content")
	id, preview, ts := entry.ID, entry.Preview, entry.Timestamp

	entry.Normalize()

	assert.Equal(t, id, entry.ID)
	assert.Equal(t, preview, entry.Preview)
	assert.True(t, ts.Equal(entry.Timestamp))
}
