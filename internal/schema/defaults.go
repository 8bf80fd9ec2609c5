package schema

import (
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

// Built-in structure schemas, used when schemas/doc_structure_schema.json is
// absent. Section order is the contract: generated content must match it
// one-to-one before assembly.

func defaultSchemas() map[docModel.DocType]docModel.Schema {
	return map[docModel.DocType]docModel.Schema{
		docModel.DocTypeNDA: {
			DocType: docModel.DocTypeNDA,
			Title:   "Non-Disclosure Agreement",
			Sections: []docModel.Section{
				{Kind: docModel.KindParagraph, Text: "This Non-Disclosure Agreement is entered into on [Date] between [Name] (the \"Disclosing Party\") and [Company] (the \"Receiving Party\")."},
				{Kind: docModel.KindHeading2, Text: "1. Definition of Confidential Information"},
				{Kind: docModel.KindParagraph, Text: "Confidential Information includes all information disclosed by the Disclosing Party, including but not limited to [Purpose]."},
				{Kind: docModel.KindHeading2, Text: "2. Obligations of the Receiving Party"},
				{Kind: docModel.KindParagraph, Text: "The Receiving Party shall hold all Confidential Information in strict confidence and shall not disclose it to any third party."},
				{Kind: docModel.KindHeading2, Text: "3. Term"},
				{Kind: docModel.KindParagraph, Text: "The obligations under this Agreement shall remain in effect for [Term] from the date of execution."},
				{Kind: docModel.KindHeading2, Text: "4. Governing Law"},
				{Kind: docModel.KindParagraph, Text: "This Agreement shall be governed by the laws of [Jurisdiction]."},
				{Kind: docModel.KindSignature, Text: "Disclosing Party: [Name]\n\n_____________________________"},
			},
		},
		docModel.DocTypeContract: {
			DocType: docModel.DocTypeContract,
			Title:   "Service Contract",
			Sections: []docModel.Section{
				{Kind: docModel.KindParagraph, Text: "This Contract is made on [Date] between [Name] (the \"Service Provider\") and [Company] (the \"Client\")."},
				{Kind: docModel.KindHeading2, Text: "1. Services"},
				{Kind: docModel.KindParagraph, Text: "The Service Provider agrees to perform the services described as: [Purpose]."},
				{Kind: docModel.KindHeading2, Text: "2. Payment"},
				{Kind: docModel.KindParagraph, Text: "The Client shall pay the Service Provider as agreed between the parties for the services rendered."},
				{Kind: docModel.KindHeading2, Text: "3. Term and Termination"},
				{Kind: docModel.KindParagraph, Text: "This Contract remains in force for [Term] unless terminated earlier in accordance with its terms."},
				{Kind: docModel.KindHeading2, Text: "4. Governing Law"},
				{Kind: docModel.KindParagraph, Text: "This Contract shall be governed by the laws of [Jurisdiction]."},
				{Kind: docModel.KindSignature, Text: "Disclosing Party: [Name]\n\n_____________________________\n\n\nReceiving Party: [Company]\n\n_____________________________"},
			},
		},
		docModel.DocTypeOfferLetter: {
			DocType: docModel.DocTypeOfferLetter,
			Title:   "Offer of Employment",
			Sections: []docModel.Section{
				{Kind: docModel.KindParagraph, Text: "Dear [Name], [Company] is pleased to offer you the position of [Position], commencing on [Start_Date]."},
				{Kind: docModel.KindHeading2, Text: "1. Position and Duties"},
				{Kind: docModel.KindParagraph, Text: "You will serve as [Position] and perform the duties customarily associated with that role."},
				{Kind: docModel.KindHeading2, Text: "2. Compensation"},
				{Kind: docModel.KindParagraph, Text: "Your compensation will be [Salary], payable in accordance with the company's standard payroll practices."},
				{Kind: docModel.KindHeading2, Text: "3. Acceptance"},
				{Kind: docModel.KindParagraph, Text: "Please confirm your acceptance of this offer by signing and returning this letter by [Date]."},
				{Kind: docModel.KindSignature, Text: "Disclosing Party: [Company]\n\n_____________________________"},
			},
		},
		docModel.DocTypeMOU: {
			DocType: docModel.DocTypeMOU,
			Title:   "Memorandum of Understanding",
			Sections: []docModel.Section{
				{Kind: docModel.KindParagraph, Text: "This Memorandum of Understanding is entered into on [Date] between [Name] and [Company]."},
				{Kind: docModel.KindHeading2, Text: "1. Purpose"},
				{Kind: docModel.KindParagraph, Text: "The parties wish to cooperate on: [Purpose]."},
				{Kind: docModel.KindHeading2, Text: "2. Responsibilities"},
				{Kind: docModel.KindParagraph, Text: "Each party shall use reasonable efforts to carry out its responsibilities under this understanding."},
				{Kind: docModel.KindHeading2, Text: "3. Non-Binding Nature"},
				{Kind: docModel.KindParagraph, Text: "This Memorandum expresses the intentions of the parties and does not create legally binding obligations."},
				{Kind: docModel.KindSignature, Text: "Disclosing Party: [Name]\n\n_____________________________\n\n\nReceiving Party: [Company]\n\n_____________________________"},
			},
		},
		docModel.DocTypeIPAgreement: {
			DocType: docModel.DocTypeIPAgreement,
			Title:   "Intellectual Property Assignment Agreement",
			Sections: []docModel.Section{
				{Kind: docModel.KindParagraph, Text: "This Intellectual Property Assignment Agreement is made on [Date] between [Name] (the \"Assignor\") and [Company] (the \"Assignee\")."},
				{Kind: docModel.KindHeading2, Text: "1. Assignment"},
				{Kind: docModel.KindParagraph, Text: "The Assignor assigns to the Assignee all right, title and interest in the intellectual property described as: [Purpose]."},
				{Kind: docModel.KindHeading2, Text: "2. Consideration"},
				{Kind: docModel.KindParagraph, Text: "The assignment is made for good and valuable consideration, receipt of which is acknowledged."},
				{Kind: docModel.KindHeading2, Text: "3. Governing Law"},
				{Kind: docModel.KindParagraph, Text: "This Agreement shall be governed by the laws of [Jurisdiction]."},
				{Kind: docModel.KindSignature, Text: "Disclosing Party: [Name]\n\n_____________________________\n\n\nReceiving Party: [Company]\n\n_____________________________"},
			},
		},
	}
}

func defaultFieldSpecs() map[docModel.DocType]docModel.FieldSpec {
	return map[docModel.DocType]docModel.FieldSpec{
		docModel.DocTypeNDA: {
			Required: []docModel.FieldName{docModel.FieldPartyName, docModel.FieldCompany, docModel.FieldDate},
			Optional: []docModel.FieldName{docModel.FieldTerm, docModel.FieldJurisdiction, docModel.FieldPurpose},
		},
		docModel.DocTypeContract: {
			Required: []docModel.FieldName{docModel.FieldPartyName, docModel.FieldCompany, docModel.FieldDate},
			Optional: []docModel.FieldName{docModel.FieldTerm, docModel.FieldJurisdiction, docModel.FieldPurpose},
		},
		docModel.DocTypeOfferLetter: {
			Required: []docModel.FieldName{docModel.FieldPartyName, docModel.FieldCompany, docModel.FieldPosition},
			Optional: []docModel.FieldName{docModel.FieldSalary, docModel.FieldStartDate, docModel.FieldDate},
		},
		docModel.DocTypeMOU: {
			Required: []docModel.FieldName{docModel.FieldPartyName, docModel.FieldCompany, docModel.FieldPurpose},
			Optional: []docModel.FieldName{docModel.FieldDate},
		},
		docModel.DocTypeIPAgreement: {
			Required: []docModel.FieldName{docModel.FieldPartyName, docModel.FieldCompany, docModel.FieldDate},
			Optional: []docModel.FieldName{docModel.FieldJurisdiction, docModel.FieldPurpose},
		},
	}
}
