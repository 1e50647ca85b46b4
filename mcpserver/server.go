// Package mcpserver wires the class search services into an MCP server.
//
// This is a thin composition layer: it creates the per-tool adapters and
// registers them. No business logic lives here.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"class-search-server/models"
	"class-search-server/vocab"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ClassOperations and DiscoveryOperations are the service slices the MCP
// tools consume.
type ClassOperations interface {
	SearchClasses(rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error)
	FindClassesBySchedule(freeSpecs []string, rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error)
	CheckScheduleConflicts(busySpecs []string, rawFilters map[string]any, page, resultsPerPage int) (*models.SectionPage, error)
	SearchByInstructor(term, namePartial string) (*models.SectionPage, error)
	CompareSections(subject, catalogNumber, term string) ([]models.ClassSection, error)
	GetClassDetails(term, classNumbers string) ([]models.ClassSection, error)
	CheckAvailability(term, classNumber string) (*models.Availability, error)
}

type DiscoveryOperations interface {
	SuggestValues(keyword string) ([]vocab.Suggestion, error)
	ListValues(field string) ([]string, error)
}

// New creates the MCP server with every class search tool registered.
func New(classOps ClassOperations, discoveryOps DiscoveryOperations) *server.MCPServer {
	s := server.NewMCPServer(
		"class-search",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	searchTool := NewSearchClassesTool(classOps)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	fitTool := NewFitScheduleTool(classOps)
	s.AddTool(fitTool.Definition(), fitTool.Handle)

	conflictsTool := NewCheckConflictsTool(classOps)
	s.AddTool(conflictsTool.Definition(), conflictsTool.Handle)

	instructorTool := NewInstructorSearchTool(classOps)
	s.AddTool(instructorTool.Definition(), instructorTool.Handle)

	compareTool := NewCompareSectionsTool(classOps)
	s.AddTool(compareTool.Definition(), compareTool.Handle)

	detailsTool := NewClassDetailsTool(classOps)
	s.AddTool(detailsTool.Definition(), detailsTool.Handle)

	availabilityTool := NewAvailabilityTool(classOps)
	s.AddTool(availabilityTool.Definition(), availabilityTool.Handle)

	suggestTool := NewSuggestFiltersTool(discoveryOps)
	s.AddTool(suggestTool.Definition(), suggestTool.Handle)

	optionsTool := NewFilterOptionsTool(discoveryOps)
	s.AddTool(optionsTool.Definition(), optionsTool.Handle)

	return s
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func serverInstructions() string {
	return `Class search tools for a university course catalog.

Term codes are four digits, "1" + two-digit year + season digit
(3=Spring, 6=Summer, 9=Fall): 1263 is Spring 2026, 1259 is Fall 2025.
When the user does not name a term, omit termCode and the current
default term is used.

Filters accept human phrasing: subjects by code or name ("CS" or
"computer science"), catalog numbers with a trailing wildcard ("1*"
for 100-level), meeting times as "morning", "afternoon", "evening" or
"HH:MM-HH:MM". Use suggest_filter_values when unsure which concrete
filter value a phrase maps to, and get_filter_options to enumerate a
field's known values.

Schedule windows are compact specs like "Mon/Wed 10:00-11:15": days
separated by "/", 24-hour times, end exclusive. Classes that merely
touch a boundary (one ends 10:00, other starts 10:00) do not conflict.`
}
