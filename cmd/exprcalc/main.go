// Command exprcalc is an interactive calculator for the ${...} cell
// expression language. It is handy for trying out opcode formulas before
// putting them in a sheet.
//
//	> let k 60
//	> ${k-9}
//	51
//	> stem Bass_k50_v100.wav
//	> k*2+v
//	200
package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/momoluna444/csv2sfz/expr"
	"github.com/momoluna444/csv2sfz/sample"
)

func main() {
	rl, err := readline.New("> ")
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer rl.Close()

	env := expr.Env{}
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if out := eval(line, env); out != "" {
			fmt.Println(out)
		}
	}
}

func eval(line string, env expr.Env) string {
	fields := strings.Fields(line)
	switch fields[0] {
	case "let":
		if len(fields) != 3 {
			return "usage: let <name> <value>"
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Sprintf("bad value: %v", err)
		}
		env[fields[1]] = v
		return ""
	case "stem":
		if len(fields) != 2 {
			return "usage: stem <filename>"
		}
		clear(env)
		for name, v := range sample.StemParams(sample.Stem(fields[1])) {
			env[name] = v
		}
		return ""
	case "env":
		if len(env) == 0 {
			return "(empty)"
		}
		var b strings.Builder
		for name, v := range env {
			fmt.Fprintf(&b, "%s=%s\n", name, expr.Format(v))
		}
		return strings.TrimSuffix(b.String(), "\n")
	}

	// A bare expression is evaluated directly; anything with ${...} spans is
	// treated as a cell template, like a sheet would see it.
	if !strings.Contains(line, "${") {
		node, err := expr.Parse(line)
		if err != nil {
			return fmt.Sprintf("parse error: %v", err)
		}
		v, err := expr.Eval(node, env)
		if err != nil {
			return fmt.Sprintf("eval error: %v", err)
		}
		return expr.Format(v)
	}
	return expr.Apply(line, env)
}
