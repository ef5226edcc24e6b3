package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	OutputDir string `envconfig:"TEST_DATA_DIR" default:"./test_data"`
}

const sampleText = `Acme Corp announced record results this quarter. The launch was wonderful and customers were happy.
Dr. Smith presented the findings in Paris. Revenue is expected to grow next year.
Some analysts were skeptical. The report is available on request.`

const sampleJSON = `{
  "title": "Quarterly report",
  "summary": "Acme Corp announced record results. Everyone was happy with the launch.",
  "author": "John Smith"
}`

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		panic(fmt.Sprintf("Config invalide : %v", err))
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		panic(fmt.Sprintf("Impossible de créer le dossier : %v", err))
	}

	fmt.Println("🚀 Doc-Lab : Génération des fichiers de test...")

	writeFile(filepath.Join(cfg.OutputDir, "sample.txt"), sampleText)
	writeFile(filepath.Join(cfg.OutputDir, "sample.json"), sampleJSON)
	genPDF(filepath.Join(cfg.OutputDir, "rapport_test.pdf"))

	fmt.Println("\n✅ Prêt ! Lance le REPL avec -file sur un de ces fichiers.")
}

func writeFile(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Printf("❌ Erreur %s : %v\n", path, err)
		return
	}
	fmt.Printf("📄 Fichier généré : %s\n", path)
}

// genPDF crée un document pour tester le chemin "document" de l'extracteur
func genPDF(path string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(40, 20, "Doc-Lab : Analyse PDF")
	pdf.Ln(20)

	pdf.SetFont("Arial", "", 12)
	content := "Ce document vérifie que les PDF reçoivent la réponse de substitution\n" +
		"et non une extraction de texte."
	pdf.MultiCell(0, 10, content, "", "", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		fmt.Printf("❌ Erreur PDF : %v\n", err)
	} else {
		fmt.Printf("📄 PDF généré : %s\n", path)
	}
}
