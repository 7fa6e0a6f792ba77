package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"rfid-app/config"
	"rfid-app/controllers/idgen"
	"rfid-app/database"
	"rfid-app/models"
	"rfid-app/types"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

const (
	unprocessedFolder = "manifest-data/unprocessed"
	processedFolder   = "manifest-data/processed"
)

// checkUnprocessedFiles walks the drop folder and imports every CSV that has
// not been logged yet.
func checkUnprocessedFiles(db *gorm.DB) {
	files, err := filepath.Glob(filepath.Join(unprocessedFolder, "*.csv"))
	if err != nil {
		log.Fatal("❌ Failed to read folder:", err)
	}

	for _, file := range files {
		fmt.Println("📂 Processing file:", file)
		processFile(db, file)
	}
}

func processFile(db *gorm.DB, filename string) {
	var existingFile models.FileLog
	if err := db.Where("filename = ?", filepath.Base(filename)).First(&existingFile).Error; err == nil {
		log.Println("⚠️ File already processed, skip:", filename)
		return
	}

	info, err := os.Stat(filename)
	if err != nil {
		fmt.Println("❌ Failed to stat file:", err)
		return
	}

	processManifestCSV(db, filename)

	db.Create(&models.FileLog{Filename: filepath.Base(filename), DateModified: info.ModTime()})
	fmt.Println("✅ File processed:", filename)
}

// processManifestCSV imports one manifest per CSV row. Expected columns:
// origin, destination, vehicle, description.
func processManifestCSV(db *gorm.DB, filename string) {
	file, err := os.Open(filename)
	if err != nil {
		fmt.Println("❌ Failed to open file:", err)
		return
	}

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Println("❌ Failed to read CSV file:", err)
		file.Close()
		return
	}
	file.Close()

	var manifestNos []string

	err = db.Transaction(func(tx *gorm.DB) error {
		for i, record := range records {
			if i == 0 {
				continue // Skip header
			}
			if len(record) < 4 {
				fmt.Println("⚠️ Skipping short row:", record)
				continue
			}

			manifest := models.Manifest{
				ManifestNo:  types.SnowflakeID(idgen.GenerateID()),
				Origin:      record[0],
				Destination: record[1],
				Vehicle:     record[2],
				Description: record[3],
				Status:      "Open",
			}
			if err := tx.Create(&manifest).Error; err != nil {
				return err
			}
			manifestNos = append(manifestNos, fmt.Sprintf("%d", int64(manifest.ManifestNo)))
		}
		return nil
	})
	if err != nil {
		fmt.Println("❌ Failed to import manifests:", err)
		return
	}

	if len(manifestNos) > 0 {
		if err := sendEmailNotification([]string{config.SMTPSender}, filepath.Base(filename), manifestNos); err != nil {
			fmt.Println("❌ Failed to send email:", err)
		}
	}

	time.Sleep(1 * time.Second) // Make sure the file is not locked before moving

	if _, err := os.Stat(processedFolder); os.IsNotExist(err) {
		if err := os.MkdirAll(processedFolder, os.ModePerm); err != nil {
			log.Fatalf("❌ Failed to create processed folder: %v", err)
		}
	}

	processedFilePath := filepath.Join(processedFolder, filepath.Base(filename))
	if err := os.Rename(filename, processedFilePath); err != nil {
		fmt.Println("⚠️ Rename failed, trying copy & delete...")
		if err := copyAndDeleteFile(filename, processedFilePath); err != nil {
			log.Fatalf("❌ Failed to move file to processed folder: %v", err)
		}
	}

	fmt.Println("✅ Manifests imported:", manifestNos)
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return err
	}

	return os.Remove(src)
}

func sendEmailNotification(toEmails []string, filename string, manifestNos []string) error {
	if config.SMTPHost == "" {
		fmt.Println("⚠️ SMTP not configured, skipping notification")
		return nil
	}

	subject := "📦 Manifests imported from " + filename
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>New manifests imported</h3>
				<p>File: <strong>%s</strong></p>
				<p>Manifest numbers: %v</p>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, filename, manifestNos)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return err
	}

	fmt.Println("✅ Notification email sent to:", toEmails)
	return nil
}

func main() {
	config.LoadConfig()
	idgen.Init()

	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	fmt.Println("🚀 Manifest CSV processor running...")

	checkUnprocessedFiles(db)

	fmt.Println("✅ All CSV files processed!")
}
