package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

const (
	wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partSettings     = "word/settings.xml"

	applicationName = "docx-export-api"
)

const contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/word/settings.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const rootRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings" Target="settings.xml"/>` +
	`</Relationships>`

const appXML = xmlHeader + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
	`<Application>` + applicationName + `</Application>` +
	`</Properties>`

const settingsXML = xmlHeader + `<w:settings xmlns:w="` + wmlNamespace + `">` +
	`<w:defaultTabStop w:val="720"/>` +
	`<w:characterSpacingControl w:val="doNotCompress"/>` +
	`<w:compat><w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15"/></w:compat>` +
	`</w:settings>`

func coreXML(title string) string {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	buf.WriteString("<dc:title>")
	escapeText(&buf, title)
	buf.WriteString("</dc:title>")
	buf.WriteString("<dc:creator>" + applicationName + "</dc:creator>")
	buf.WriteString("</cp:coreProperties>")
	return buf.String()
}

func numberingXML(p *Profile) string {
	indent := strconv.Itoa(p.BulletIndent)
	return xmlHeader + `<w:numbering xmlns:w="` + wmlNamespace + `">` +
		`<w:abstractNum w:abstractNumId="0">` +
		`<w:multiLevelType w:val="singleLevel"/>` +
		`<w:lvl w:ilvl="0">` +
		`<w:start w:val="1"/>` +
		`<w:numFmt w:val="bullet"/>` +
		`<w:lvlText w:val="` + "•" + `"/>` +
		`<w:lvlJc w:val="left"/>` +
		`<w:pPr><w:ind w:left="` + indent + `" w:hanging="` + indent + `"/></w:pPr>` +
		`<w:rPr><w:rFonts w:ascii="` + p.FontFamily + `" w:hAnsi="` + p.FontFamily + `"/></w:rPr>` +
		`</w:lvl>` +
		`</w:abstractNum>` +
		`<w:num w:numId="` + strconv.Itoa(bulletNumID) + `"><w:abstractNumId w:val="0"/></w:num>` +
		`</w:numbering>`
}

func stylesXML(p *Profile, title ParagraphStyle) string {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<w:styles xmlns:w="` + wmlNamespace + `">`)
	fmt.Fprintf(&buf, `<w:docDefaults><w:rPrDefault><w:rPr>`+
		`<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:eastAsia="%[1]s" w:cs="%[1]s"/>`+
		`<w:sz w:val="%[2]d"/><w:szCs w:val="%[2]d"/>`+
		`</w:rPr></w:rPrDefault>`+
		`<w:pPrDefault><w:pPr><w:spacing w:after="%[3]d" w:line="240" w:lineRule="auto"/></w:pPr></w:pPrDefault>`+
		`</w:docDefaults>`, p.FontFamily, p.BodySize, p.SpaceAfter)
	buf.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)

	for _, style := range []ParagraphStyle{title, p.Subtitle, p.Section, p.SubHeading, p.Bullet} {
		writeStyleDef(&buf, p, style)
	}
	buf.WriteString(`</w:styles>`)
	return buf.String()
}

func writeStyleDef(buf *bytes.Buffer, p *Profile, style ParagraphStyle) {
	fmt.Fprintf(buf, `<w:style w:type="paragraph" w:styleId="%s">`, style.StyleID)
	fmt.Fprintf(buf, `<w:name w:val="%s"/>`, style.Name)
	buf.WriteString(`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>`)
	writeParagraphProps(buf, p, style, "", style.StyleID == "Heading1" || style.StyleID == "Heading2")
	writeRunProps(buf, style.Run)
	buf.WriteString(`</w:style>`)
}

// writeParagraphProps emits <w:pPr> in schema order. An empty styleRef omits
// <w:pStyle>; outline levels are only written in style definitions.
func writeParagraphProps(buf *bytes.Buffer, p *Profile, style ParagraphStyle, styleRef string, outline bool) {
	buf.WriteString("<w:pPr>")
	if styleRef != "" {
		fmt.Fprintf(buf, `<w:pStyle w:val="%s"/>`, styleRef)
	}
	if style.KeepNext {
		buf.WriteString("<w:keepNext/>")
	}
	if style.Bulleted {
		fmt.Fprintf(buf, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, bulletNumID)
	}
	if style.SpaceBefore > 0 {
		fmt.Fprintf(buf, `<w:spacing w:before="%d" w:after="%d"/>`, style.SpaceBefore, style.SpaceAfter)
	} else {
		fmt.Fprintf(buf, `<w:spacing w:after="%d"/>`, style.SpaceAfter)
	}
	if style.Bulleted {
		fmt.Fprintf(buf, `<w:ind w:left="%d" w:hanging="%d"/>`, p.BulletIndent, p.BulletIndent)
	}
	if style.Centered {
		buf.WriteString(`<w:jc w:val="center"/>`)
	}
	if outline {
		fmt.Fprintf(buf, `<w:outlineLvl w:val="%d"/>`, style.OutlineLevel)
	}
	buf.WriteString("</w:pPr>")
}

// writeRunProps emits <w:rPr> in schema order, or nothing for a plain run.
func writeRunProps(buf *bytes.Buffer, rs RunStyle) {
	if !rs.Bold && !rs.Italic && !rs.Caps && rs.Size == 0 && rs.Color == "" {
		return
	}
	buf.WriteString("<w:rPr>")
	if rs.Bold {
		buf.WriteString("<w:b/><w:bCs/>")
	}
	if rs.Italic {
		buf.WriteString("<w:i/><w:iCs/>")
	}
	if rs.Caps {
		buf.WriteString("<w:caps/>")
	}
	if rs.Color != "" {
		fmt.Fprintf(buf, `<w:color w:val="%s"/>`, rs.Color)
	}
	if rs.Size > 0 {
		fmt.Fprintf(buf, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, rs.Size, rs.Size)
	}
	buf.WriteString("</w:rPr>")
}

func escapeText(buf *bytes.Buffer, text string) {
	// xml.EscapeText only fails when the writer fails; bytes.Buffer never does.
	_ = xml.EscapeText(buf, []byte(text))
}
