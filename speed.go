package readtime

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

// Stock speed model values. DefaultWordsPerMinute also serves as the clamp
// floor when a configuration carries a non-positive reading speed.
const (
	DefaultWordsPerMinute      = 200.0
	DefaultSecondsPerImage     = 12.0
	DefaultSecondsPerCodeBlock = 20.0
)

// ReadSpeed configures the speed model. Values are immutable in use: the
// chainable setters return updated copies, so a single ReadSpeed can be
// shared across concurrent callers without locking.
type ReadSpeed struct {
	// WordsPerMinute is the prose reading speed. Non-positive values are
	// clamped to DefaultWordsPerMinute at estimation time; callers that
	// prefer rejection over clamping should call Validate.
	WordsPerMinute float64 `json:"words_per_minute"`
	// SecondsPerImage is the fixed cost added per image reference.
	SecondsPerImage float64 `json:"seconds_per_image"`
	// SecondsPerCodeBlock is the fixed cost added per code block.
	SecondsPerCodeBlock float64 `json:"seconds_per_code_block"`
	// CountEmoji adds one word per emoji grapheme when enabled; otherwise
	// emoji are stripped before tokenization and contribute nothing.
	CountEmoji bool `json:"count_emoji"`
	// ChineseMode counts each CJK codepoint as one word and the remaining
	// text as whitespace-delimited tokens.
	ChineseMode bool `json:"chinese_mode"`
}

// DefaultSpeed returns the stock configuration: 200 words per minute, 12
// seconds per image, 20 seconds per code block, emoji counted, Chinese mode
// on.
func DefaultSpeed() ReadSpeed {
	return ReadSpeed{
		WordsPerMinute:      DefaultWordsPerMinute,
		SecondsPerImage:     DefaultSecondsPerImage,
		SecondsPerCodeBlock: DefaultSecondsPerCodeBlock,
		CountEmoji:          true,
		ChineseMode:         true,
	}
}

// WPM returns a copy with the words-per-minute value replaced.
func (s ReadSpeed) WPM(wpm float64) ReadSpeed {
	s.WordsPerMinute = wpm
	return s
}

// ImageTime returns a copy with the per-image cost replaced.
func (s ReadSpeed) ImageTime(seconds float64) ReadSpeed {
	s.SecondsPerImage = seconds
	return s
}

// CodeBlockTime returns a copy with the per-code-block cost replaced.
func (s ReadSpeed) CodeBlockTime(seconds float64) ReadSpeed {
	s.SecondsPerCodeBlock = seconds
	return s
}

// Emoji returns a copy with emoji counting toggled.
func (s ReadSpeed) Emoji(count bool) ReadSpeed {
	s.CountEmoji = count
	return s
}

// Chinese returns a copy with Chinese mode toggled.
func (s ReadSpeed) Chinese(enabled bool) ReadSpeed {
	s.ChineseMode = enabled
	return s
}

// Validate reports configuration errors for callers that prefer strictness
// over the clamping the estimator applies: the reading speed must be
// positive and the per-image and per-code-block costs non-negative.
func (s ReadSpeed) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.WordsPerMinute, validation.By(func(value any) error {
			if v, _ := value.(float64); v <= 0 {
				return validation.NewError("readtime.speed.wpm_positive", "words per minute must be positive")
			}
			return nil
		})),
		validation.Field(&s.SecondsPerImage, validation.By(nonNegative("readtime.speed.image_time", "seconds per image"))),
		validation.Field(&s.SecondsPerCodeBlock, validation.By(nonNegative("readtime.speed.code_block_time", "seconds per code block"))),
	)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "read speed validation failed")
	}
	return nil
}

func nonNegative(code, name string) validation.RuleFunc {
	return func(value any) error {
		if v, _ := value.(float64); v < 0 {
			return validation.NewError(code, name+" must not be negative")
		}
		return nil
	}
}

// wordsPerMinute is the effective reading speed with the clamp applied so
// estimation stays total over any configuration.
func (s ReadSpeed) wordsPerMinute() float64 {
	if s.WordsPerMinute <= 0 {
		return DefaultWordsPerMinute
	}
	return s.WordsPerMinute
}

// secondsPerImage is the effective per-image cost; negatives count as zero.
func (s ReadSpeed) secondsPerImage() float64 {
	if s.SecondsPerImage < 0 {
		return 0
	}
	return s.SecondsPerImage
}

// secondsPerCodeBlock is the effective per-code-block cost; negatives count
// as zero.
func (s ReadSpeed) secondsPerCodeBlock() float64 {
	if s.SecondsPerCodeBlock < 0 {
		return 0
	}
	return s.SecondsPerCodeBlock
}
