// Package models lists the chat models an OpenAI API key can use as
// translation backends.
package models
