package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction keeps the core free of a concrete logging library.
//
// Example usage:
//
//	logger.Info("Webpage extracted", map[string]interface{}{
//		"url": "https://example.com/launch",
//		"headings": 4,
//	})
//
//	logger.Error("Failed to generate tweets", map[string]interface{}{
//		"url": "https://example.com/launch",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Error messages indicate failures that need attention.
	Error(msg string, fields map[string]interface{})
}
