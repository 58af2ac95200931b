// Package sdk is a Go client for the refsearch HTTP API.
//
// Minimal usage:
//
//	client := sdk.New("http://localhost:8080", sdk.WithAPIKey("secret"))
//	resp, err := client.Search(ctx, sdk.SearchRequest{Prompt: "AI training pod design"})
package sdk
