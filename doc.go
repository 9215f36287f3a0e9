// Package yamlfold restyles long and multi-line YAML strings as folded block
// scalars while keeping everything else about a document as it was written:
// comments, key order, quoting, anchors, tags and flow collections.
//
// A string scalar is folded when it contains a line break or is longer than
// Options.Width characters (DefaultWidth, 88, unless configured). Only the
// presentation changes; loading the output yields the same data as loading
// the input. Folded text is wrapped at the same width.
//
// Basic usage:
//
//	out, err := yamlfold.Format(src, yamlfold.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(out)
//
// Streaming:
//
//	if err := yamlfold.FormatStream(os.Stdout, os.Stdin, yamlfold.DefaultOptions()); err != nil {
//		log.Fatal(err)
//	}
//
// Working on the tree:
//
//	docs, err := yamlfold.Load(os.Stdin)
//	if err != nil {
//		log.Fatal(err)
//	}
//	folded := yamlfold.FoldDocuments(docs, 72)
//	opts := yamlfold.DefaultOptions()
//	opts.Width = 72
//	if err := yamlfold.Encode(os.Stdout, folded, opts); err != nil {
//		log.Fatal(err)
//	}
package yamlfold
