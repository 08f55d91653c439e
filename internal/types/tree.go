package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// TreeFilesKey is the JSON key holding the file names of a directory.
	TreeFilesKey = "files"
	// treeFilesDirectoryKey is the key used for a child directory literally named "files".
	treeFilesDirectoryKey = TreeFilesKey + "/"

	errorTreeObjectExpected = "tree node: expected JSON object, got %v"
	errorTreeKeyExpected    = "tree node: expected string key, got %v"
	errorTreeDuplicateKey   = "tree node: duplicate key %q"
)

// TreeDirectory is a named child directory of a TreeNode.
type TreeDirectory struct {
	Name string
	Node *TreeNode
}

// TreeNode describes one directory in JSON tree mode. Files and Directories keep
// directory enumeration order.
type TreeNode struct {
	Files       []string
	Directories []TreeDirectory
}

// NewTreeNode returns an empty node whose file list serializes as [] rather than null.
func NewTreeNode() *TreeNode {
	return &TreeNode{Files: []string{}}
}

// AddFile appends a file name.
func (node *TreeNode) AddFile(name string) {
	node.Files = append(node.Files, name)
}

// AddDirectory appends a child directory.
func (node *TreeNode) AddDirectory(name string, child *TreeNode) {
	node.Directories = append(node.Directories, TreeDirectory{Name: name, Node: child})
}

// MarshalJSON writes the files key first followed by one key per child directory.
func (node *TreeNode) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')

	files := node.Files
	if files == nil {
		files = []string{}
	}
	encodedFiles, marshalError := json.Marshal(files)
	if marshalError != nil {
		return nil, marshalError
	}
	buffer.WriteString(`"` + TreeFilesKey + `":`)
	buffer.Write(encodedFiles)

	for _, directory := range node.Directories {
		child := directory.Node
		if child == nil {
			child = NewTreeNode()
		}
		encodedKey, keyError := json.Marshal(directoryKey(directory.Name))
		if keyError != nil {
			return nil, keyError
		}
		encodedChild, childError := child.MarshalJSON()
		if childError != nil {
			return nil, childError
		}
		buffer.WriteByte(',')
		buffer.Write(encodedKey)
		buffer.WriteByte(':')
		buffer.Write(encodedChild)
	}

	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// UnmarshalJSON restores a node produced by MarshalJSON, preserving key order.
func (node *TreeNode) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoded, decodeError := decodeTreeNode(decoder)
	if decodeError != nil {
		return decodeError
	}
	*node = *decoded
	return nil
}

func decodeTreeNode(decoder *json.Decoder) (*TreeNode, error) {
	openToken, tokenError := decoder.Token()
	if tokenError != nil {
		return nil, tokenError
	}
	if delimiter, isDelimiter := openToken.(json.Delim); !isDelimiter || delimiter != '{' {
		return nil, fmt.Errorf(errorTreeObjectExpected, openToken)
	}

	result := NewTreeNode()
	seenKeys := make(map[string]struct{})
	for decoder.More() {
		keyToken, keyError := decoder.Token()
		if keyError != nil {
			return nil, keyError
		}
		key, isString := keyToken.(string)
		if !isString {
			return nil, fmt.Errorf(errorTreeKeyExpected, keyToken)
		}
		if _, duplicate := seenKeys[key]; duplicate {
			return nil, fmt.Errorf(errorTreeDuplicateKey, key)
		}
		seenKeys[key] = struct{}{}

		if key == TreeFilesKey {
			var files []string
			if filesError := decoder.Decode(&files); filesError != nil {
				return nil, fmt.Errorf("tree node: decoding %s: %w", TreeFilesKey, filesError)
			}
			if files != nil {
				result.Files = files
			}
			continue
		}

		child, childError := decodeTreeNode(decoder)
		if childError != nil {
			return nil, fmt.Errorf("tree node %q: %w", key, childError)
		}
		result.AddDirectory(directoryName(key), child)
	}

	if _, closeError := decoder.Token(); closeError != nil {
		return nil, closeError
	}
	return result, nil
}

func directoryKey(name string) string {
	if name == TreeFilesKey {
		return treeFilesDirectoryKey
	}
	return name
}

func directoryName(key string) string {
	if key == treeFilesDirectoryKey {
		return strings.TrimSuffix(key, "/")
	}
	return key
}
