// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonfmt implements a JSON scanner and a whitespace rewriter for
// pretty-printing and minifying JSON text.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON.  Construct a scanner
// from an io.Reader and call its Next method to iterate over the tokens of the
// input. Peek reports the next token without consuming it:
//
//	s := jsonfmt.NewScanner(input)
//	for {
//	   tok, err := s.Next()
//	   if err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   } else if tok.Kind == jsonfmt.EOF {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// The text of a String token is the content between its quotation marks with
// escape sequences undecoded. Use Unescape to decode it.
//
// Numbers are checked by ValidNumber, which accepts a superset of the JSON
// number grammar. Call StrictNumbers to use ValidNumberStrict instead.
//
// # Rewriting
//
// Format and Minify copy JSON text from a reader to a writer, replacing the
// whitespace between tokens. They work on the bytes of the input without
// building a syntax tree, so they use memory proportional only to the depth of
// nesting:
//
//	if err := jsonfmt.Format(os.Stdout, input, jsonfmt.DefaultIndent); err != nil {
//	   log.Fatalf("Format: %v", err)
//	}
//
// # Errors
//
// Errors reported by this package and its subpackages have concrete type
// *Error. Use errors.Is with ErrIO, ErrLexical, ErrGrammar, or ErrType to
// classify them.
//
// To parse JSON into a syntax tree, see package ast.
package jsonfmt
