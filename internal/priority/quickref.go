package priority

// QuickReference is the study card summarizing the priority order the
// classifier encodes. Printed by the quickref command.
const QuickReference = `PRIORITY ORDER — STACK OF FOUR

1. LIFE THREATS (ABC+D)
   Airway:      choking, stridor, obstruction
   Breathing:   dyspnea, low O2, wheezing
   Circulation: bleeding, no pulse, shock, compressions
   Disability:  neuro changes, pupils, seizures

2. SAFETY
   Falls:     bed low, rails up, call bell
   Infection: isolation, PPE, hand hygiene
   Violence:  one-to-one, remove hazards

3. PHYSICAL NEEDS (by urgency)
   Glucose (minutes):     hypoglycemia -> 15g carbs
   Elimination (hours):   urinary retention -> catheter
   Pain (hours):          severe pain -> analgesics
   Nutrition (days):      malnutrition -> supplements

4. NURSING PROCESS (ADPIE)
   Assessment wins ties.
   Assessment -> Diagnosis -> Planning -> Implementation -> Evaluation

TIPS
  "EXCEPT" questions flip the answer.
  Assessment before intervention.
  Physical before psychosocial.`
