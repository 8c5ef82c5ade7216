// Package processor wires the command-line flags to the translation
// adapter, the deck exporter and the GUI. Each cobra command of lingopad
// ends up in one Processor method.
package processor
