/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console renders the view surface as plain text. It is the stand-in for
// the Mini App DOM when the client runs in a terminal.
type Console struct {
	out io.Writer
	in  *bufio.Scanner
}

// NewConsole creates a console view writing to out and reading confirmation
// answers from in. The scanner is shared with the command loop so that
// prompts and commands consume the same input stream.
func NewConsole(out io.Writer, in *bufio.Scanner) *Console {
	return &Console{
		out: out,
		in:  in,
	}
}

func (c *Console) SetText(region Region, text string) {
	fmt.Fprintf(c.out, "  %-18s %s\n", string(region)+":", text)
}

func (c *Console) SetInterests(interests []string) {
	if len(interests) == 0 {
		fmt.Fprintln(c.out, "  interests:         —")
		return
	}
	fmt.Fprintf(c.out, "  interests:         %s\n", strings.Join(interests, " · "))
}

func (c *Console) ShowScreen(screen string) {
	fmt.Fprintf(c.out, "\n=== %s ===\n", screen)
}

func (c *Console) ShowAlert(message string) {
	fmt.Fprintf(c.out, "\n[!] %s\n", message)
}

// Confirm prompts for a yes/no answer. Anything but "y"/"yes"/"да" counts
// as no.
func (c *Console) Confirm(message string) bool {
	fmt.Fprintf(c.out, "\n[?] %s [y/N] ", message)
	if !c.in.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(c.in.Text())) {
	case "y", "yes", "да":
		return true
	}
	return false
}

func (c *Console) ShowMatchNotification(text string) {
	fmt.Fprintf(c.out, "\n♥♥♥ %s ♥♥♥\n", text)
}

func (c *Console) HideMatchNotification() {
	fmt.Fprintln(c.out, "match notification dismissed")
}

func (c *Console) SetSubmitEnabled(enabled bool) {
	if enabled {
		fmt.Fprintln(c.out, "  [форма заполнена — команда submit доступна]")
	}
}
