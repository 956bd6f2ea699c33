// Package diffblock turns the body of a show-diff block into rendered HTML.
//
// A [Processor] parses the block, compiles its revision range, runs git diff
// in the repository, scrubs the result and renders it. [Processor.HTML] is
// the one place where a failure becomes visible output: it logs the error
// and returns it as an escaped <pre class="show-diff-error"> element.
package diffblock
