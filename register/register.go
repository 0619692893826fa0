// Package register implements the register subcommand, which adds this
// server to an MCP client configuration file.
package register

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// serverEntry is the JSON shape of one MCP server in a client config.
type serverEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// Run executes the register subcommand. serverName is the MCP server name;
// args is everything after "register" on the command line. Supported forms:
//
//	register project [directory] [-- server args...]  → <directory>/.mcp.json
//	register user [-- server args...]                 → ~/.claude.json
func Run(serverName string, args []string) {
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	scope := args[0]
	if scope != "project" && scope != "user" {
		fmt.Fprintf(os.Stderr, "Error: unknown scope %q (must be \"project\" or \"user\")\n", scope)
		printUsage()
		os.Exit(1)
	}

	directory, serverArgs := splitArgs(scope, args[1:])

	binaryPath, err := os.Executable()
	if err == nil {
		binaryPath, err = filepath.EvalSymlinks(binaryPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error detecting binary path: %v\n", err)
		os.Exit(1)
	}

	configPath, err := resolveConfigPath(scope, directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
		os.Exit(1)
	}

	entry := serverEntry{Command: binaryPath, Args: serverArgs}
	if err := writeConfig(configPath, serverName, entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Registered %q in %s\n", serverName, configPath)
}

func printUsage() {
	binaryName := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s register project [directory]  # → <directory>/.mcp.json (default: .)\n", binaryName)
	fmt.Fprintf(os.Stderr, "  %s register user                 # → ~/.claude.json\n", binaryName)
	fmt.Fprintf(os.Stderr, "  %s register project . -- -docs ./material-docs\n", binaryName)
}

// splitArgs separates the optional project directory from arguments forwarded
// to the server (everything after "--").
func splitArgs(scope string, args []string) (directory string, serverArgs []string) {
	directory = "."
	for i, arg := range args {
		if arg == "--" {
			return directory, args[i+1:]
		}
		if scope == "project" && i == 0 {
			directory = arg
		}
	}
	return directory, nil
}

func resolveConfigPath(scope string, directory string) (string, error) {
	if scope == "project" {
		absDir, err := filepath.Abs(directory)
		if err != nil {
			return "", fmt.Errorf("resolving directory %s: %w", directory, err)
		}
		return filepath.Join(absDir, ".mcp.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude.json"), nil
}

// writeConfig merges the server entry into the config file, creating it if
// needed, and writes atomically via a temp file rename.
func writeConfig(configPath string, serverName string, entry serverEntry) error {
	config := map[string]interface{}{}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing existing config %s: %w", configPath, err)
		}
	}

	servers, ok := config["mcpServers"].(map[string]interface{})
	if !ok {
		servers = map[string]interface{}{}
		config["mcpServers"] = servers
	}
	servers[serverName] = entry

	output, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	output = append(output, '\n')

	configDir := filepath.Dir(configPath)
	tmpFile, err := os.CreateTemp(configDir, ".mcp-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", configDir, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(output); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, configPath, err)
	}
	return nil
}
