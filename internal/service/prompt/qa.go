package prompt

// qaBase общая база вопросов-ответов о контроле техники; не зависит от центра
const qaBase = `**Q : Quels documents dois-je apporter ?**
R : La carte grise du véhicule est obligatoire. Le permis de conduire n'est pas nécessaire.

**Q : Combien de temps dure un contrôle technique ?**
R : Comptez la durée moyenne indiquée pour votre centre, généralement entre 45 minutes et une heure.

**Q : Que se passe-t-il en cas de contre-visite ?**
R : Vous disposez de deux mois pour effectuer les réparations et repasser la contre-visite.

**Q : À quelle fréquence dois-je passer le contrôle technique ?**
R : Premier contrôle dans les six mois précédant le quatrième anniversaire du véhicule, puis tous les deux ans.

**Q : Puis-je conduire si mon contrôle technique est expiré ?**
R : Non, vous risquez une amende de 135 euros et une immobilisation du véhicule.

**Q : Dois-je être présent pendant le contrôle ?**
R : Ce n'est pas obligatoire, mais vous devez déposer et récupérer le véhicule selon les modalités du centre.`
