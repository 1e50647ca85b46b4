package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// filterArgOptions declares the shared filter arguments on a tool
// definition. These flow to the query normalizer untouched.
func filterArgOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("termCode", mcp.Description("Four-digit term code, e.g. 1263 for Spring 2026. Omit for the default term.")),
		mcp.WithString("query", mcp.Description("Free-text search over course titles and descriptions, more than 2 characters.")),
		mcp.WithString("subject", mcp.Description("Subject code or name, e.g. CS or \"computer science\".")),
		mcp.WithString("catalogNumber", mcp.Description("Catalog number, exact (121) or with trailing wildcard (1* for 100-level).")),
		mcp.WithString("instructor", mcp.Description("Instructor name or partial, at least 2 characters.")),
		mcp.WithString("meetingTime", mcp.Description("morning, afternoon, evening, or HH:MM-HH:MM.")),
		mcp.WithArray("days", mcp.Description("Meeting days, e.g. [\"Mon\",\"Wed\"]."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("instructionMode", mcp.Description("Instruction mode, e.g. online, in person, hybrid.")),
		mcp.WithString("academicLevel", mcp.Description("undergraduate or graduate.")),
		mcp.WithString("campus", mcp.Description("Campus name.")),
		mcp.WithString("session", mcp.Description("Session code.")),
		mcp.WithString("classType", mcp.Description("Class component type, e.g. LEC, LAB.")),
		mcp.WithString("feeStructure", mcp.Description("Fee structure code.")),
		mcp.WithString("courseId", mcp.Description("Institutional course ID.")),
		mcp.WithString("credits", mcp.Description("Exact credit count.")),
		mcp.WithNumber("minCredits", mcp.Description("Minimum credits.")),
		mcp.WithNumber("maxCredits", mcp.Description("Maximum credits.")),
		mcp.WithArray("attributes", mcp.Description("Course attribute values, e.g. gen-ed foundations codes."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("requirementDesignations", mcp.Description("Requirement designation codes."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithBoolean("hasOpenSeats", mcp.Description("Only sections with open seats.")),
		mcp.WithString("sortBy", mcp.Description("Sort field, e.g. \"Catalog Number\".")),
		mcp.WithString("sortDirection", mcp.Description("Ascending or Descending.")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1.")),
		mcp.WithNumber("resultsPerPage", mcp.Description("Results per page, up to 50.")),
	}
}

// controlArgs are tool arguments that are not search filters.
var controlArgs = map[string]bool{
	"page":           true,
	"resultsPerPage": true,
	"freeTimes":      true,
	"busyTimes":      true,
}

// splitArgs separates pagination from raw filter fields.
func splitArgs(args map[string]any) (filters map[string]any, page, resultsPerPage int) {
	filters = make(map[string]any, len(args))
	for k, v := range args {
		if controlArgs[k] {
			continue
		}
		filters[k] = v
	}
	page = argInt(args, "page")
	resultsPerPage = argInt(args, "resultsPerPage")
	return filters, page, resultsPerPage
}

func argString(args map[string]any, key string) string {
	if s, ok := args[key].(string); ok {
		return s
	}
	return ""
}

// argInt reads a numeric argument; JSON numbers decode as float64.
func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func argStringSlice(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// toolJSON marshals a payload into a text tool result.
func toolJSON(payload any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// SearchClassesTool searches the catalog with normalized filters.
type SearchClassesTool struct {
	classOps ClassOperations
}

func NewSearchClassesTool(classOps ClassOperations) *SearchClassesTool {
	return &SearchClassesTool{classOps: classOps}
}

func (t *SearchClassesTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Search class sections by any combination of filters: subject, catalog number, keyword, instructor, meeting time, attributes, open seats and more."),
	}
	opts = append(opts, filterArgOptions()...)
	return mcp.NewTool("search_classes", opts...)
}

func (t *SearchClassesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filters, page, perPage := splitArgs(req.GetArguments())
	result, err := t.classOps.SearchClasses(filters, page, perPage)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(result)
}

// FitScheduleTool finds sections fitting inside free time windows.
type FitScheduleTool struct {
	classOps ClassOperations
}

func NewFitScheduleTool(classOps ClassOperations) *FitScheduleTool {
	return &FitScheduleTool{classOps: classOps}
}

func (t *FitScheduleTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Find class sections whose every meeting fits inside the given free time windows, e.g. [\"Mon/Wed 10:00-14:00\", \"Fri 09:00-12:00\"]."),
		mcp.WithArray("freeTimes", mcp.Required(),
			mcp.Description("Free windows as \"Days HH:MM-HH:MM\" specs."),
			mcp.Items(map[string]any{"type": "string"})),
	}
	opts = append(opts, filterArgOptions()...)
	return mcp.NewTool("find_classes_by_schedule", opts...)
}

func (t *FitScheduleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	filters, page, perPage := splitArgs(args)
	result, err := t.classOps.FindClassesBySchedule(argStringSlice(args, "freeTimes"), filters, page, perPage)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(result)
}

// CheckConflictsTool filters out sections colliding with busy windows.
type CheckConflictsTool struct {
	classOps ClassOperations
}

func NewCheckConflictsTool(classOps ClassOperations) *CheckConflictsTool {
	return &CheckConflictsTool{classOps: classOps}
}

func (t *CheckConflictsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Search class sections and keep only those that do not conflict with the given busy time windows."),
		mcp.WithArray("busyTimes", mcp.Required(),
			mcp.Description("Busy windows as \"Days HH:MM-HH:MM\" specs."),
			mcp.Items(map[string]any{"type": "string"})),
	}
	opts = append(opts, filterArgOptions()...)
	return mcp.NewTool("check_schedule_conflicts", opts...)
}

func (t *CheckConflictsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	filters, page, perPage := splitArgs(args)
	result, err := t.classOps.CheckScheduleConflicts(argStringSlice(args, "busyTimes"), filters, page, perPage)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(result)
}

// InstructorSearchTool finds sections by instructor name partial.
type InstructorSearchTool struct {
	classOps ClassOperations
}

func NewInstructorSearchTool(classOps ClassOperations) *InstructorSearchTool {
	return &InstructorSearchTool{classOps: classOps}
}

func (t *InstructorSearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_by_instructor",
		mcp.WithDescription("Find class sections taught by instructors matching a name or partial name."),
		mcp.WithString("termCode", mcp.Required(), mcp.Description("Four-digit term code.")),
		mcp.WithString("query", mcp.Required(), mcp.Description("Instructor name or partial, at least 2 characters.")),
	)
}

func (t *InstructorSearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	result, err := t.classOps.SearchByInstructor(argString(args, "termCode"), argString(args, "query"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(result)
}

// CompareSectionsTool lists every section of one course side by side.
type CompareSectionsTool struct {
	classOps ClassOperations
}

func NewCompareSectionsTool(classOps ClassOperations) *CompareSectionsTool {
	return &CompareSectionsTool{classOps: classOps}
}

func (t *CompareSectionsTool) Definition() mcp.Tool {
	return mcp.NewTool("compare_sections",
		mcp.WithDescription("List every section of one course in section-number order, with seats, instructors and meeting times, for side-by-side comparison."),
		mcp.WithString("subject", mcp.Required(), mcp.Description("Subject code or name.")),
		mcp.WithString("catalogNumber", mcp.Required(), mcp.Description("Exact catalog number, e.g. 121.")),
		mcp.WithString("termCode", mcp.Description("Four-digit term code. Omit for the default term.")),
	)
}

func (t *CompareSectionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	result, err := t.classOps.CompareSections(
		argString(args, "subject"), argString(args, "catalogNumber"), argString(args, "termCode"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(result)
}

// ClassDetailsTool fetches full details for specific class numbers.
type ClassDetailsTool struct {
	classOps ClassOperations
}

func NewClassDetailsTool(classOps ClassOperations) *ClassDetailsTool {
	return &ClassDetailsTool{classOps: classOps}
}

func (t *ClassDetailsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_class_details",
		mcp.WithDescription("Fetch full details for one or more class sections by class number."),
		mcp.WithString("termCode", mcp.Required(), mcp.Description("Four-digit term code.")),
		mcp.WithString("classNumbers", mcp.Required(), mcp.Description("Comma-separated class numbers, e.g. \"12345\" or \"12345,12346\".")),
	)
}

func (t *ClassDetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	result, err := t.classOps.GetClassDetails(argString(args, "termCode"), argString(args, "classNumbers"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(result)
}

// AvailabilityTool reports live seat status for one section.
type AvailabilityTool struct {
	classOps ClassOperations
}

func NewAvailabilityTool(classOps ClassOperations) *AvailabilityTool {
	return &AvailabilityTool{classOps: classOps}
}

func (t *AvailabilityTool) Definition() mcp.Tool {
	return mcp.NewTool("check_availability",
		mcp.WithDescription("Check seat and waitlist availability for one class section: Open, Full-WaitlistOpen, Full-WaitlistClosed or Closed."),
		mcp.WithString("termCode", mcp.Required(), mcp.Description("Four-digit term code.")),
		mcp.WithString("classNumber", mcp.Required(), mcp.Description("Single class number.")),
	)
}

func (t *AvailabilityTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	result, err := t.classOps.CheckAvailability(argString(args, "termCode"), argString(args, "classNumber"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(result)
}

// SuggestFiltersTool maps free-text keywords to concrete filter values.
type SuggestFiltersTool struct {
	discoveryOps DiscoveryOperations
}

func NewSuggestFiltersTool(discoveryOps DiscoveryOperations) *SuggestFiltersTool {
	return &SuggestFiltersTool{discoveryOps: discoveryOps}
}

func (t *SuggestFiltersTool) Definition() mcp.Tool {
	return mcp.NewTool("suggest_filter_values",
		mcp.WithDescription("Map a free-text phrase like \"gen-ed\" or \"honors\" to the concrete filter field and values it refers to."),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("Free-text phrase to resolve.")),
	)
}

func (t *SuggestFiltersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.discoveryOps.SuggestValues(argString(req.GetArguments(), "keyword"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(result)
}

// FilterOptionsTool enumerates the known values for a filter field.
type FilterOptionsTool struct {
	discoveryOps DiscoveryOperations
}

func NewFilterOptionsTool(discoveryOps DiscoveryOperations) *FilterOptionsTool {
	return &FilterOptionsTool{discoveryOps: discoveryOps}
}

func (t *FilterOptionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_filter_options",
		mcp.WithDescription("List the known values for a filterable field: subject, instructionMode, attributes, requirementDesignations, academicLevel, campus or session."),
		mcp.WithString("field", mcp.Required(), mcp.Description("Field name to enumerate.")),
	)
}

func (t *FilterOptionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field := argString(req.GetArguments(), "field")
	values, err := t.discoveryOps.ListValues(field)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(map[string]any{"field": field, "values": values})
}
