package domain

// DrugClass tags a drug recommendation with its pharmacological class.
type DrugClass string

const (
	ACE_INHIBITOR           DrugClass = "ACE_INHIBITOR"
	ARB                     DrugClass = "ARB"
	BETA_BLOCKER            DrugClass = "BETA_BLOCKER"
	CALCIUM_CHANNEL_BLOCKER DrugClass = "CALCIUM_CHANNEL_BLOCKER"
	THIAZIDE_DIURETIC       DrugClass = "THIAZIDE_DIURETIC"
	LOOP_DIURETIC           DrugClass = "LOOP_DIURETIC"
	STATIN                  DrugClass = "STATIN"
	ANTIPLATELET            DrugClass = "ANTIPLATELET"
	ANTICOAGULANT           DrugClass = "ANTICOAGULANT"
	FIBRINOLYTIC            DrugClass = "FIBRINOLYTIC"
	DOAC                    DrugClass = "DOAC"
	LMWH                    DrugClass = "LMWH"
	UFH                     DrugClass = "UFH"
	PPI                     DrugClass = "PPI"
	ANTIBIOTIC              DrugClass = "ANTIBIOTIC"
	STEROID                 DrugClass = "STEROID"
	SABA                    DrugClass = "SABA"
	SAMA                    DrugClass = "SAMA"
	LAMA                    DrugClass = "LAMA"
	LABA                    DrugClass = "LABA"
	INSULIN                 DrugClass = "INSULIN"
	DMARD_CONVENTIONAL      DrugClass = "DMARD_CONVENTIONAL"
	DMARD_BIOLOGIC_TNF      DrugClass = "DMARD_BIOLOGIC_TNF"
	DMARD_BIOLOGIC_OTHER    DrugClass = "DMARD_BIOLOGIC_OTHER"
	DMARD_JAK_INHIBITOR     DrugClass = "DMARD_JAK_INHIBITOR"
	AMINOSALICYLATE         DrugClass = "AMINOSALICYLATE"
	NITRATE                 DrugClass = "NITRATE"
	OPIOID                  DrugClass = "OPIOID"
	IMMUNOSUPPRESSANT       DrugClass = "IMMUNOSUPPRESSANT"
)

// InvestigationType tags an investigation recommendation.
type InvestigationType string

const (
	ECG                  InvestigationType = "ECG"
	TROPONIN             InvestigationType = "TROPONIN"
	CHEST_XRAY           InvestigationType = "CHEST_XRAY"
	CTPA                 InvestigationType = "CTPA"
	VQ_SCAN              InvestigationType = "VQ_SCAN"
	D_DIMER              InvestigationType = "D_DIMER"
	ABG                  InvestigationType = "ABG"
	U_AND_E              InvestigationType = "U_AND_E"
	FBC                  InvestigationType = "FBC"
	GLUCOSE_HBA1C        InvestigationType = "GLUCOSE_HBA1C"
	BLOOD_KETONES        InvestigationType = "BLOOD_KETONES"
	SPUTUM_CULTURE       InvestigationType = "SPUTUM_CULTURE"
	CRP                  InvestigationType = "CRP"
	ESR                  InvestigationType = "ESR"
	CT_HEAD_NON_CONTRAST InvestigationType = "CT_HEAD_NON_CONTRAST"
	CT_ANGIOGRAM         InvestigationType = "CT_ANGIOGRAM"
	MRI_BRAIN            InvestigationType = "MRI_BRAIN"
	COLONOSCOPY          InvestigationType = "COLONOSCOPY"
	SIGMOIDOSCOPY        InvestigationType = "SIGMOIDOSCOPY"
	DAS28_ASSESSMENT     InvestigationType = "DAS28_ASSESSMENT"
	CORONARY_ANGIOGRAPHY InvestigationType = "CORONARY_ANGIOGRAPHY"
	ECHOCARDIOGRAM       InvestigationType = "ECHOCARDIOGRAM"
	LFT                  InvestigationType = "LFT"
)

// Urgency indicates how soon an investigation should be performed.
type Urgency string

const (
	URGENCY_IMMEDIATE Urgency = "Immediate"
	URGENCY_URGENT    Urgency = "Urgent"
	URGENCY_ROUTINE   Urgency = "Routine"
)

// String returns the canonical name.
func (d DrugClass) String() string { return string(d) }

// String returns the canonical name.
func (i InvestigationType) String() string { return string(i) }

// String returns the display form.
func (u Urgency) String() string { return string(u) }

// IsValid reports whether the value is a recognized urgency.
func (u Urgency) IsValid() bool {
	switch u {
	case URGENCY_IMMEDIATE, URGENCY_URGENT, URGENCY_ROUTINE:
		return true
	default:
		return false
	}
}
