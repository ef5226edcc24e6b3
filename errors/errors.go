package errors

import "fmt"

var (
	ErrNoReadableText  = fmt.Errorf("no readable text in payload")
	ErrNoPatterns      = fmt.Errorf("no patterns have been provided")
	ErrContentTooLarge = fmt.Errorf("document exceeds the configured size limit")
)
