// Copyright 2025 go-quad Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command permgen generates the shuffle-control table consumed by
// quad.Shuffle and quad.Splat.
//
// Each of the 256 entries holds the 16-byte control pattern for one packed
// selector i0 + 4*i1 + 16*i2 + 64*i3: result byte j of a permute is source
// byte pattern[j], so result lane k takes source lane i_k.
//
// Usage:
//
//	go run ./cmd/permgen -out quad/perm_table.go
package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

var output = flag.String("out", "perm_table.go", "output file path")

func main() {
	flag.Parse()

	src, err := format.Source([]byte(generate()))
	if err != nil {
		log.Fatalf("formatting generated table: %v", err)
	}
	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
}

// generate builds the Go source for the 256-entry control table.
func generate() string {
	var b strings.Builder
	b.WriteString("// Code generated by permgen. DO NOT EDIT.\n\n")
	b.WriteString("package quad\n\n")
	b.WriteString("// permTable maps a packed lane selector i0 + 4*i1 + 16*i2 + 64*i3 to\n")
	b.WriteString("// the 16-byte shuffle control moving source lane i_k to result lane k.\n")
	b.WriteString("var permTable = [256][16]byte{\n")
	for sel := 0; sel < 256; sel++ {
		b.WriteString("\t{")
		for k := 0; k < 4; k++ {
			lane := sel >> (2 * k) & 3
			for j := 0; j < 4; j++ {
				if k > 0 || j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%d", 4*lane+j)
			}
		}
		b.WriteString("},\n")
	}
	b.WriteString("}\n")
	return b.String()
}
