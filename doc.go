/*
Package uchar is about the identity of user-perceived characters.

Description

Comparing Unicode text by code-points is both too strict and too lax for
interactive filtering of completion candidates. It is too strict because
the precomposed "é" (U+00E9) and "e" followed by U+0301 COMBINING ACUTE
ACCENT are different code-point sequences, but denote the same character.
It is too lax because a user typing an accent or a capital letter usually
means it, and code-point folding throws this information away.

A Character is built from a short UTF-8 fragment which holds exactly one
user-perceived character: a base code-point, optionally followed by
combining marks. Breaking longer text into such fragments is up to the
client. On construction a Character computes its comparison forms once:

  Normal()      canonical decomposition (NFD), case and marks significant
  FoldedCase()  Normal() with simple case folding applied to non-marks
  Base()        non-marks only, case folded
  SwappedCase() Normal() with upper and lower case exchanged

Equivalence

There are four levels of equivalence between characters.

  Equals            same Normal(): "é" == "é", "Ω" == "Ω"
  EqualsIgnoreCase  same FoldedCase(): "é" ~ "É", but not "e" ~ "é"
  EqualsBase        same Base(): "e", "é", "E", "É" all share a base,
                    but "i" and "ı" do not
  MatchesSmart      asymmetric, see below

Folding is locale independent. Turkic dotted and dotless i are different
letters and never collapse.

Smart Matching

MatchesSmart(query, candidate) emulates "smart case" search. A bare lower
case letter in a query will match any case and any accent of the same
letter. An accent in a query commits to that accent, a capital letter
commits to upper case:

  query ↓  candidate →   e    é    E    É
  e                      ✓    ✓    ✓    ✓
  é                      -    ✓    -    ✓
  E                      -    -    ✓    ✓
  É                      -    -    -    ✓

Sharing Characters

A fuzzy matcher compares characters millions of times per keystroke.
Clients therefore should not construct characters for every comparison,
but rather intern them in a repository (see sub-package repository), which
will hand out shared, read-only instances.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package uchar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
