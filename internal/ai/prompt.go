package ai

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/diksiai/internal/sanitize"
	"github.com/diksiai/internal/styles"
)

// DefaultImprovementInstruction is used when a request carries no
// instruction of its own.
const DefaultImprovementInstruction = "Tolong poles teks berikut agar lebih hidup, jelas, dan memiliki gaya bahasa yang menarik serta alami untuk dibaca, tanpa mengubah inti cerita atau suasana emosinya."

const (
	maxInstructionLength = 500
	maxBriefIdeaLength   = 1000
	maxTitleContentRunes = 2000
)

var (
	continuationStops = []string{"\n\n", "Konteks:", "Kelanjutan:"}
	improvementStops  = []string{"Teks Asli:", "Tugas:"}
)

const reviewSystemPrompt = `Kamu adalah editor profesional yang ahli dalam mengoreksi dan memperbaiki tulisan dalam Bahasa Indonesia.

Analisis teks yang diberikan dan identifikasi bagian-bagian yang perlu diperbaiki. Untuk setiap masalah yang ditemukan, berikan informasi berikut:

1. original_text: Teks asli yang bermasalah (harus EXACT substring dari input, copy paste persis)
2. severity: Tingkat keparahan:
   - "critical": kesalahan tata bahasa, ejaan, makna tidak jelas, atau struktur kalimat yang salah
   - "warning": masalah gaya, saran perbaikan, atau hal yang bisa ditingkatkan
3. issue_type: Jenis masalah - pilih salah satu:
   - "grammar": kesalahan tata bahasa, ejaan, tanda baca
   - "clarity": kalimat membingungkan, makna tidak jelas, ambigu
   - "style": gaya bahasa kurang tepat, nada tidak konsisten
   - "redundancy": pengulangan kata/frasa yang tidak perlu, kalimat bertele-tele
   - "word_choice": pilihan kata kurang tepat, bisa diganti kata yang lebih baik
   - "simplicity": kalimat terlalu panjang/rumit, bisa disederhanakan
   - "flow": alur kalimat tidak mengalir dengan baik, transisi kurang halus
   - "conciseness": bisa dipersingkat tanpa mengurangi makna
4. suggestion: Teks yang sudah diperbaiki (pengganti untuk original_text)
5. explanation: Penjelasan singkat dalam Bahasa Indonesia mengapa perlu diperbaiki (1-2 kalimat)

HAL YANG PERLU DIPERHATIKAN:
- Kalimat yang terlalu panjang dan rumit - sarankan untuk dipecah atau disederhanakan
- Kata-kata yang berlebihan atau tidak perlu - sarankan untuk dihapus
- Pengulangan ide atau kata yang sama - sarankan alternatif atau penghapusan
- Struktur kalimat yang bisa lebih efektif - sarankan perbaikan
- Kata serapan yang ada padanan Bahasa Indonesianya - sarankan padanan yang tepat
- Kalimat pasif yang berlebihan - sarankan bentuk aktif jika lebih baik
- Penggunaan kata penghubung yang salah atau berlebihan

ATURAN PENTING:
- original_text HARUS merupakan substring yang persis ada dalam teks input
- Jangan ubah atau modifikasi original_text, copy persis dari input
- Fokus pada masalah yang benar-benar penting dan berdampak
- Maksimal 10 masalah per review
- Jika tidak ada masalah, kembalikan array kosong []
- Prioritaskan masalah "critical" terlebih dahulu

Kembalikan HANYA JSON array tanpa penjelasan tambahan. Format:
[
  {
    "original_text": "teks asli yang bermasalah",
    "severity": "critical",
    "issue_type": "grammar",
    "suggestion": "teks yang diperbaiki",
    "explanation": "penjelasan singkat dalam Bahasa Indonesia"
  }
]`

// continuationInstruction builds the task block for a continuation
// request. A non-blank brief idea is sanitized and woven in as story
// direction; otherwise the generic instruction is used.
func continuationInstruction(paragraphCount int, briefIdea string) string {
	trimmed := sanitize.UserInput(briefIdea, maxBriefIdeaLength)
	if trimmed != "" {
		return fmt.Sprintf(`Tugas: Lanjutkan cerita di atas dengan gaya sastrawi yang sama. Pertahankan nada, ritme, dan kedalaman emosi.

Arah cerita: %s

Tulis %d paragraf yang mengembangkan ide tersebut dengan natural dan mengalir. Pastikan kalimat terakhir selesai dengan sempurna.`, trimmed, paragraphCount)
	}

	return fmt.Sprintf("Tugas: Lanjutkan cerita di atas dengan gaya sastrawi yang sama. Pertahankan nada, ritme, dan kedalaman emosi. Tulis %d paragraf yang mengalir natural. Pastikan kalimat terakhir selesai dengan sempurna.", paragraphCount)
}

func continuationMessages(p ContinuationParams) []llms.MessageContent {
	system := styles.WritingStyleText(p.WritingStyle, p.CustomPrompts)
	user := fmt.Sprintf(`Konteks:
%s

%s

Kelanjutan:`, p.Context, continuationInstruction(p.ParagraphCount, p.BriefIdea))

	return []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}
}

func improvementMessages(p ImprovementParams) []llms.MessageContent {
	system := styles.WritingStyleText(p.WritingStyle, p.CustomPrompts)

	instruction := p.Instruction
	if instruction == "" {
		instruction = DefaultImprovementInstruction
	}
	instruction = sanitize.UserInput(instruction, maxInstructionLength)

	user := fmt.Sprintf(`Teks Asli:
%s

Tugas: %s

ATURAN PENTING: Perbaiki teks dengan mengikuti gaya sastrawi yang dipilih. Pertahankan inti cerita dan suasana emosi, tetapi tingkatkan kualitas bahasa sesuai gaya penulisan. Tulis HANYA dalam BAHASA INDONESIA.

Teks yang Diperbaiki:`, p.Text, instruction)

	return []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}
}

func titleMessages(p TitleParams) []llms.MessageContent {
	styleDesc := styles.TitleStyleText(p.TitleStyle)

	system := fmt.Sprintf(`Kamu adalah asisten penulis yang ahli dalam membuat judul cerita yang menarik.

Gaya judul yang diminta: %s

Tugas: Buat 5 judul berbeda yang sesuai dengan gaya tersebut. Setiap judul harus unik dan menarik. Format output harus berupa list dengan format:
1. Judul pertama
2. Judul kedua
3. Judul ketiga
4. Judul keempat
5. Judul kelima

Tulis HANYA dalam BAHASA INDONESIA.`, styleDesc)

	content := p.Content
	if runes := []rune(content); len(runes) > maxTitleContentRunes {
		content = string(runes[:maxTitleContentRunes])
	}

	user := fmt.Sprintf(`Konten Cerita:
%s

Berdasarkan konten di atas, buatlah 5 judul yang sesuai dengan gaya: %s

Judul:`, content, styleDesc)

	return []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}
}

func reviewMessages(content string) []llms.MessageContent {
	user := fmt.Sprintf(`Analisis teks berikut dan identifikasi bagian yang perlu diperbaiki:

%s

Kembalikan hasil analisis dalam format JSON array:`, content)

	return []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, reviewSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}
}
