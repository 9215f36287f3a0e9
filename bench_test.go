package yamlfold

import (
	"bytes"
	"strings"
	"testing"

	"pkt.systems/yamlfold/internal/ansi"
)

const benchDocString = `# service definition
name: api # public name
description: "The API service answers every request that reaches the cluster ingress and forwards it to the workers."
notes: "first line\nsecond line\nthird line"
ports: [80, 443, 8080]
labels:
  team: platform
  tier: "frontend"
containers:
  - name: app
    image: registry.example.com/app:1.2.3
    command: |
      /bin/app
      --listen :8080
    env:
      - name: GREETING
        value: "hello there, this value is long enough to be folded by the default width setting"
  - name: sidecar
    image: registry.example.com/sidecar:0.4.0
`

var benchDocBytes = []byte(benchDocString)
var benchStream = buildBenchStream()

var benchFormatSink []byte

func buildBenchStream() []byte {
	var b strings.Builder
	for i := 0; i < 16; i++ {
		if i > 0 {
			b.WriteString("---\n")
		}
		b.WriteString(benchDocString)
	}
	return []byte(b.String())
}

func warmPools() {
	releaseBuffer(acquireBuffer())
}

func BenchmarkFormat(b *testing.B) {
	benchmarkFormat(b, benchDocBytes, false)
}

func BenchmarkFormat_Color(b *testing.B) {
	benchmarkFormat(b, benchDocBytes, true)
}

func BenchmarkFormat_Stream(b *testing.B) {
	benchmarkFormat(b, benchStream, false)
}

func benchmarkFormat(b *testing.B, in []byte, color bool) {
	opts := DefaultOptions()
	opts.Color = color

	warmPools()
	b.ReportAllocs()
	b.SetBytes(int64(len(in)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Format(in, opts)
		if err != nil {
			b.Fatal(err)
		}
		benchFormatSink = out
	}
}

func BenchmarkFormatStream(b *testing.B) {
	opts := DefaultOptions()

	var out bytes.Buffer
	reader := bytes.NewReader(benchDocBytes)

	warmPools()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out.Reset()
		reader.Reset(benchDocBytes)
		if err := FormatStream(&out, reader, opts); err != nil {
			b.Fatal(err)
		}
		benchFormatSink = out.Bytes()
	}
}

func BenchmarkEncode(b *testing.B) {
	docs, err := LoadBytes(benchDocBytes)
	if err != nil {
		b.Fatal(err)
	}
	docs = FoldDocuments(docs, DefaultWidth)
	opts := DefaultOptions()

	warmPools()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Marshal(docs, opts)
		if err != nil {
			b.Fatal(err)
		}
		benchFormatSink = out
	}
}

func BenchmarkColorize(b *testing.B) {
	plain, err := Format(benchDocBytes, DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	pal := colorPaletteFromAnsi(ansi.PaletteJQDefault)

	b.ReportAllocs()
	b.SetBytes(int64(len(plain)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchFormatSink = colorize(plain, pal)
	}
}

func TestBenchDocFormats(t *testing.T) {
	out, err := Format(benchDocBytes, DefaultOptions())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if err := Verify(benchDocBytes, out); err != nil {
		t.Fatalf("Verify failed: %v\noutput:\n%s", err, out)
	}
	if !bytes.Contains(out, []byte("description: >-\n")) {
		t.Fatalf("expected description to be folded, got:\n%s", out)
	}
	if !bytes.Contains(out, []byte("command: >\n")) {
		t.Fatalf("expected literal command to be folded, got:\n%s", out)
	}
	if !bytes.Contains(out, []byte("name: api # public name\n")) {
		t.Fatalf("expected line comment to survive, got:\n%s", out)
	}
}
